package ratetable

import "fmt"

// Tier charges up to Width units at Rate. A nil Width absorbs everything
// that is left.
type Tier struct {
	Width *float64
	Rate  float64
}

// Schedule is a cumulative tier schedule.
type Schedule struct {
	Name  string
	Tiers []Tier
}

// Apply charges amount across the tiers in order and returns the total.
// Anything left after a bounded last tier is not charged.
func (s Schedule) Apply(amount float64) float64 {
	total := 0.0
	remaining := amount
	for _, tier := range s.Tiers {
		take := remaining
		if tier.Width != nil && *tier.Width < take {
			take = *tier.Width
		}
		total += take * tier.Rate
		remaining -= take
		if remaining <= 0 {
			break
		}
	}
	return total
}

// Validate checks tier widths and rates. Only the last tier may be unbounded.
func (s Schedule) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schedule name cannot be empty")
	}
	if len(s.Tiers) == 0 {
		return fmt.Errorf("schedule %q has no tiers", s.Name)
	}
	for i, tier := range s.Tiers {
		if !isFinite(tier.Rate) {
			return fmt.Errorf("schedule %q tier %d: rate must be finite", s.Name, i)
		}
		if tier.Width == nil {
			if i != len(s.Tiers)-1 {
				return fmt.Errorf("schedule %q tier %d: only the last tier may be unbounded", s.Name, i)
			}
			continue
		}
		if !isFinite(*tier.Width) || *tier.Width <= 0 {
			return fmt.Errorf("schedule %q tier %d: width must be positive, got %g", s.Name, i, *tier.Width)
		}
	}
	return nil
}

// Width is a convenience for building bounded tiers.
func Width(w float64) *float64 {
	return &w
}
