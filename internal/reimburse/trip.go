package reimburse

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTrip is returned when trip inputs fall outside the domain every
// policy is defined on.
var ErrInvalidTrip = errors.New("invalid trip")

// Trip holds the three inputs of a reimbursement request.
type Trip struct {
	Days     float64
	Miles    float64
	Receipts float64
}

// Validate rejects trips no policy can price. Days must be strictly positive
// because every policy divides by it to get the pace.
func (t Trip) Validate() error {
	switch {
	case math.IsNaN(t.Days) || math.IsInf(t.Days, 0):
		return fmt.Errorf("%w: days must be a finite number, got %v", ErrInvalidTrip, t.Days)
	case t.Days <= 0:
		return fmt.Errorf("%w: days must be greater than zero, got %v", ErrInvalidTrip, t.Days)
	case math.IsNaN(t.Miles) || math.IsInf(t.Miles, 0):
		return fmt.Errorf("%w: miles must be a finite number, got %v", ErrInvalidTrip, t.Miles)
	case t.Miles < 0:
		return fmt.Errorf("%w: miles cannot be negative, got %v", ErrInvalidTrip, t.Miles)
	case math.IsNaN(t.Receipts) || math.IsInf(t.Receipts, 0):
		return fmt.Errorf("%w: receipts must be a finite number, got %v", ErrInvalidTrip, t.Receipts)
	case t.Receipts < 0:
		return fmt.Errorf("%w: receipts cannot be negative, got %v", ErrInvalidTrip, t.Receipts)
	}
	return nil
}

// Pace is miles per day.
func (t Trip) Pace() float64 {
	return t.Miles / t.Days
}
