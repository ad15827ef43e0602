package reimburse

import "log/slog"

// Policy is a named pricing strategy.
type Policy interface {
	// Name is the identifier the policy is registered and selected under.
	Name() string

	// Price computes the refund for a trip that already passed Validate.
	Price(t Trip) Breakdown
}

// Adjustment is one named modifier applied on top of the base components.
type Adjustment struct {
	Name  string
	Value float64
}

// Breakdown records every intermediate of a computation.
type Breakdown struct {
	Policy      string
	PerDiem     float64
	Mileage     float64
	Receipts    float64
	Subtotal    float64
	Adjustments []Adjustment
	Refund      float64
}

// LogValue renders the breakdown as a group of slog attributes.
func (b Breakdown) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("policy", b.Policy),
		slog.Float64("per_diem", b.PerDiem),
		slog.Float64("mileage", b.Mileage),
		slog.Float64("receipts", b.Receipts),
		slog.Float64("subtotal", b.Subtotal),
	}
	for _, a := range b.Adjustments {
		attrs = append(attrs, slog.Float64(a.Name, a.Value))
	}
	attrs = append(attrs, slog.Float64("refund", b.Refund))
	return slog.GroupValue(attrs...)
}

// Compute validates t and prices it under p, returning the breakdown.
func Compute(p Policy, t Trip) (Breakdown, error) {
	if err := t.Validate(); err != nil {
		return Breakdown{}, err
	}
	return p.Price(t), nil
}

// Refund is Compute reduced to the rounded refund.
func Refund(p Policy, t Trip) (float64, error) {
	b, err := Compute(p, t)
	if err != nil {
		return 0, err
	}
	return b.Refund, nil
}
