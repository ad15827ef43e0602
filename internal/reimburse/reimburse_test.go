package reimburse_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/specialistvlad/reimbursego/internal/registry"
	"github.com/specialistvlad/reimbursego/internal/reimburse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policy(t *testing.T, name string) reimburse.Policy {
	t.Helper()
	reg, err := registry.Builtin(context.Background())
	require.NoError(t, err)
	p, err := reg.Lookup(name)
	require.NoError(t, err)
	return p
}

func adjustment(t *testing.T, b reimburse.Breakdown, name string) float64 {
	t.Helper()
	for _, a := range b.Adjustments {
		if a.Name == name {
			return a.Value
		}
	}
	t.Fatalf("breakdown has no adjustment %q", name)
	return 0
}

func compute(t *testing.T, p reimburse.Policy, days, miles, receipts float64) reimburse.Breakdown {
	t.Helper()
	b, err := reimburse.Compute(p, reimburse.Trip{Days: days, Miles: miles, Receipts: receipts})
	require.NoError(t, err)
	return b
}

func TestLegacyTiered_FiveDayTrip(t *testing.T) {
	t.Parallel()

	b := compute(t, policy(t, reimburse.LegacyTieredName), 5, 500, 500)

	assert.Equal(t, reimburse.LegacyTieredName, b.Policy)
	assert.Equal(t, 500.0, b.PerDiem)
	assert.InDelta(t, 238.0, b.Mileage, 1e-9)
	assert.Equal(t, 375.0, b.Receipts)
	assert.InDelta(t, 1113.0, b.Subtotal, 1e-9)
	assert.Equal(t, 0.15, adjustment(t, b, "duration_adjustment"))
	assert.Equal(t, 0.0, adjustment(t, b, "efficiency_adjustment"))
	assert.InDelta(t, 1.15, adjustment(t, b, "bonus_factor"), 1e-12)
	assert.Equal(t, 1279.95, b.Refund)
}

func TestLegacyTiered_ReceiptRateBoundaries(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.LegacyTieredName)
	testCases := []struct {
		receipts float64
		rate     float64
	}{
		{receipts: 0, rate: 0.40},
		{receipts: 49.99, rate: 0.40},
		{receipts: 50, rate: 0.60},
		{receipts: 299.99, rate: 0.60},
		{receipts: 300, rate: 0.75},
		{receipts: 600, rate: 0.85},
		{receipts: 800, rate: 0.85},
		{receipts: 800.01, rate: 0.65},
		{receipts: 1000, rate: 0.65},
		{receipts: 1000.01, rate: 0.55},
		{receipts: 2500, rate: 0.55},
	}

	for _, tc := range testCases {
		tc := tc
		b := compute(t, p, 7, 0, tc.receipts)
		assert.InDelta(t, tc.receipts*tc.rate, b.Receipts, 1e-9, "receipts %v", tc.receipts)
	}
}

func TestLegacyTiered_DurationAdjustment(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.LegacyTieredName)
	testCases := []struct {
		days float64
		want float64
	}{
		{days: 1, want: -0.05},
		{days: 3, want: -0.05},
		{days: 4, want: 0.10},
		{days: 5, want: 0.15},
		{days: 6, want: 0.10},
		{days: 7, want: 0},
		{days: 8, want: 0},
		{days: 9, want: -0.10},
		{days: 30, want: -0.10},
	}

	for _, tc := range testCases {
		tc := tc
		b := compute(t, p, tc.days, 0, 0)
		assert.Equal(t, tc.want, adjustment(t, b, "duration_adjustment"), "days %v", tc.days)
	}
}

func TestLegacyTiered_EfficiencyAdjustment(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.LegacyTieredName)
	testCases := []struct {
		pace float64
		want float64
	}{
		{pace: 0, want: -0.05},
		{pace: 99.99, want: -0.05},
		{pace: 100, want: 0},
		{pace: 149.99, want: 0},
		{pace: 150, want: 0.05},
		{pace: 179.99, want: 0.05},
		{pace: 180, want: 0.10},
		{pace: 220, want: 0.10},
		{pace: 220.01, want: 0.05},
		{pace: 260, want: 0.05},
		{pace: 260.01, want: 0},
		{pace: 300, want: 0},
		{pace: 300.01, want: -0.05},
	}

	for _, tc := range testCases {
		tc := tc
		// A one-day trip makes pace equal to miles.
		b := compute(t, p, 1, tc.pace, 0)
		assert.Equal(t, tc.want, adjustment(t, b, "efficiency_adjustment"), "pace %v", tc.pace)
	}
}

func TestLegacyTiered_MileageIsMonotonic(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.LegacyTieredName)
	prev := -1.0
	for miles := 0.0; miles <= 1500; miles += 2.5 {
		b := compute(t, p, 3, miles, 0)
		require.GreaterOrEqual(t, b.Mileage, prev, "mileage decreased at %v", miles)
		prev = b.Mileage
	}
}

func TestLegacyTiered_RefundIsFiniteAndInCents(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.LegacyTieredName)
	for days := 1.0; days <= 14; days++ {
		for miles := 0.0; miles <= 1500; miles += 37.5 {
			for receipts := 0.0; receipts <= 2500; receipts += 113.3 {
				b := compute(t, p, days, miles, receipts)
				require.False(t, math.IsNaN(b.Refund) || math.IsInf(b.Refund, 0))
				require.GreaterOrEqual(t, b.Refund, 0.0)
				require.Equal(t, b.Refund, reimburse.Round2(b.Refund))
			}
		}
	}
}

func TestCompute_IsDeterministic(t *testing.T) {
	t.Parallel()

	for _, name := range []string{reimburse.LegacyTieredName, reimburse.BandedDiminishingName} {
		p := policy(t, name)
		trip := reimburse.Trip{Days: 4, Miles: 733.3, Receipts: 1234.56}

		first, err := reimburse.Refund(p, trip)
		require.NoError(t, err)
		second, err := reimburse.Refund(p, trip)
		require.NoError(t, err)
		assert.Equal(t, first, second, name)
	}
}

func TestBandedDiminishing(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.BandedDiminishingName)
	testCases := []struct {
		name     string
		days     float64
		miles    float64
		receipts float64
		want     float64
	}{
		{name: "five day trip", days: 5, miles: 500, receipts: 500, want: 1092.50},
		{name: "pace bonus", days: 3, miles: 600, receipts: 100, want: 856.50},
		{name: "pace penalty", days: 1, miles: 1200, receipts: 0, want: 705.50},
		{name: "receipts past the last threshold", days: 2, miles: 0, receipts: 2000, want: 1141.00},
		{name: "long trip with high daily spend", days: 10, miles: 1000, receipts: 1500, want: 1428.00},
		{name: "long trip with modest spend", days: 10, miles: 1000, receipts: 1000, want: 780 + 780 + 255},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := compute(t, p, tc.days, tc.miles, tc.receipts)
			assert.Equal(t, tc.want, b.Refund)
		})
	}
}

func TestBandedDiminishing_FiveDayBreakdown(t *testing.T) {
	t.Parallel()

	b := compute(t, policy(t, reimburse.BandedDiminishingName), 5, 500, 500)

	assert.InDelta(t, 405.0, b.Mileage, 1e-9)
	assert.Equal(t, 500.0, b.Receipts)
	assert.Equal(t, 187.5, b.PerDiem)
	assert.InDelta(t, 1092.5, b.Subtotal, 1e-9)
	assert.Equal(t, 1.25, adjustment(t, b, "per_diem_multiplier"))
	assert.Equal(t, 0.0, adjustment(t, b, "efficiency_bonus"))
	assert.Equal(t, 1.0, adjustment(t, b, "vacation_factor"))
}

func TestBandedDiminishing_PerDiemMultiplier(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.BandedDiminishingName)
	for days, want := range map[float64]float64{1: 0.85, 4: 0.85, 5: 1.25, 6: 1.10, 7: 1.10, 8: 0.85} {
		b := compute(t, p, days, 0, 0)
		assert.Equal(t, want, adjustment(t, b, "per_diem_multiplier"), "days %v", days)
		assert.InDelta(t, 30*days*want, b.PerDiem, 1e-9, "days %v", days)
	}
}

func TestCompute_RejectsInvalidTrips(t *testing.T) {
	t.Parallel()

	p := policy(t, reimburse.LegacyTieredName)
	testCases := []struct {
		name      string
		trip      reimburse.Trip
		errSubstr string
	}{
		{name: "zero days", trip: reimburse.Trip{Days: 0}, errSubstr: "days must be greater than zero"},
		{name: "negative days", trip: reimburse.Trip{Days: -2}, errSubstr: "days must be greater than zero"},
		{name: "NaN days", trip: reimburse.Trip{Days: math.NaN()}, errSubstr: "days must be a finite number"},
		{name: "negative miles", trip: reimburse.Trip{Days: 1, Miles: -1}, errSubstr: "miles cannot be negative"},
		{name: "infinite miles", trip: reimburse.Trip{Days: 1, Miles: math.Inf(1)}, errSubstr: "miles must be a finite number"},
		{name: "negative receipts", trip: reimburse.Trip{Days: 1, Receipts: -0.01}, errSubstr: "receipts cannot be negative"},
		{name: "infinite receipts", trip: reimburse.Trip{Days: 1, Receipts: math.Inf(1)}, errSubstr: "receipts must be a finite number"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := reimburse.Refund(p, tc.trip)
			require.Error(t, err)
			assert.True(t, errors.Is(err, reimburse.ErrInvalidTrip))
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}
