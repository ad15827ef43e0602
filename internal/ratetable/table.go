package ratetable

import (
	"fmt"
	"math"
)

// Bound is one end of a band.
type Bound struct {
	Value     float64
	Inclusive bool
}

// Band maps a range of inputs to a value. A nil bound leaves that side open.
type Band struct {
	Lower *Bound
	Upper *Bound
	Value float64
}

// Contains reports whether x falls inside the band.
func (b Band) Contains(x float64) bool {
	if b.Lower != nil {
		if x < b.Lower.Value || (x == b.Lower.Value && !b.Lower.Inclusive) {
			return false
		}
	}
	if b.Upper != nil {
		if x > b.Upper.Value || (x == b.Upper.Value && !b.Upper.Inclusive) {
			return false
		}
	}
	return true
}

// String renders the band in interval notation, e.g. "[50, 300) -> 0.6".
func (b Band) String() string {
	lo, hi := "(-inf", "+inf)"
	if b.Lower != nil {
		br := "("
		if b.Lower.Inclusive {
			br = "["
		}
		lo = fmt.Sprintf("%s%g", br, b.Lower.Value)
	}
	if b.Upper != nil {
		br := ")"
		if b.Upper.Inclusive {
			br = "]"
		}
		hi = fmt.Sprintf("%g%s", b.Upper.Value, br)
	}
	return fmt.Sprintf("%s, %s -> %g", lo, hi, b.Value)
}

// Table is an ordered range table. The first matching band wins; inputs no
// band covers get Default.
type Table struct {
	Name    string
	Bands   []Band
	Default float64
}

// Match returns the index of the first band containing x, or -1 when the
// default applies.
func (t Table) Match(x float64) int {
	for i, b := range t.Bands {
		if b.Contains(x) {
			return i
		}
	}
	return -1
}

// Lookup returns the value for x.
func (t Table) Lookup(x float64) float64 {
	if i := t.Match(x); i >= 0 {
		return t.Bands[i].Value
	}
	return t.Default
}

// Validate checks that every band is well formed and could match at least
// one input.
func (t Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !isFinite(t.Default) {
		return fmt.Errorf("table %q: default must be finite", t.Name)
	}
	for i, b := range t.Bands {
		if !isFinite(b.Value) {
			return fmt.Errorf("table %q band %d: value must be finite", t.Name, i)
		}
		if b.Lower != nil && !isFinite(b.Lower.Value) {
			return fmt.Errorf("table %q band %d: lower bound must be finite", t.Name, i)
		}
		if b.Upper != nil && !isFinite(b.Upper.Value) {
			return fmt.Errorf("table %q band %d: upper bound must be finite", t.Name, i)
		}
		if b.Lower != nil && b.Upper != nil {
			lo, hi := b.Lower.Value, b.Upper.Value
			if lo > hi || (lo == hi && !(b.Lower.Inclusive && b.Upper.Inclusive)) {
				return fmt.Errorf("table %q band %d: empty range %s", t.Name, i, b)
			}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Inclusive returns an inclusive bound at v.
func Inclusive(v float64) *Bound {
	return &Bound{Value: v, Inclusive: true}
}

// Exclusive returns an exclusive bound at v.
func Exclusive(v float64) *Bound {
	return &Bound{Value: v}
}
