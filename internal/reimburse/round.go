package reimburse

import "strconv"

// Round2 rounds x to two decimal places. strconv rounds the exact binary
// value and breaks exact ties to even, so Round2(x) always agrees with what
// "%.2f" prints for x.
func Round2(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		// FormatFloat output always parses; NaN and Inf round-trip too.
		return x
	}
	return r
}
