package reimburse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float64
		want float64
	}{
		{in: 1279.9499999999998, want: 1279.95},
		{in: 1092.5, want: 1092.50},
		{in: 0, want: 0},
		// Exact binary ties go to the even cent.
		{in: 0.125, want: 0.12},
		{in: 0.375, want: 0.38},
		// These literals sit just below the tie in binary.
		{in: 2.675, want: 2.67},
		{in: 1.005, want: 1.00},
		{in: 12.3456, want: 12.35},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprint(tc.in), func(t *testing.T) {
			t.Parallel()
			got := Round2(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, fmt.Sprintf("%.2f", tc.in), fmt.Sprintf("%.2f", got))
		})
	}
}
