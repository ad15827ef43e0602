package reimburse

import (
	"github.com/specialistvlad/reimbursego/internal/config"
	"github.com/specialistvlad/reimbursego/internal/ratetable"
)

// LegacyTieredName is the registry name of the LegacyTiered policy.
const LegacyTieredName = "legacy-tiered"

// LegacyTiered prices a trip as (per-diem + tiered mileage + flat-rate
// receipts) scaled by a bonus factor built from duration and pace
// adjustments.
type LegacyTiered struct {
	perDiemRate float64
	mileage     ratetable.Schedule
	receiptRate ratetable.Table
	duration    ratetable.Table
	efficiency  ratetable.Table
}

// NewLegacyTiered builds the policy from its definition. The definition must
// provide param "per_diem_rate", tiers "mileage" and bands "receipt_rate",
// "duration_adjustment" and "efficiency_adjustment".
func NewLegacyTiered(def *config.PolicyDefinition) (*LegacyTiered, error) {
	p := &LegacyTiered{}
	var err error
	if p.perDiemRate, err = def.Param("per_diem_rate"); err != nil {
		return nil, err
	}
	if p.mileage, err = def.Schedule("mileage"); err != nil {
		return nil, err
	}
	if p.receiptRate, err = def.Table("receipt_rate"); err != nil {
		return nil, err
	}
	if p.duration, err = def.Table("duration_adjustment"); err != nil {
		return nil, err
	}
	if p.efficiency, err = def.Table("efficiency_adjustment"); err != nil {
		return nil, err
	}
	return p, nil
}

// Name implements Policy.
func (p *LegacyTiered) Name() string { return LegacyTieredName }

// Price implements Policy.
func (p *LegacyTiered) Price(t Trip) Breakdown {
	perDiem := p.perDiemRate * t.Days
	mileage := p.mileage.Apply(t.Miles)
	receipts := t.Receipts * p.receiptRate.Lookup(t.Receipts)

	durationAdj := p.duration.Lookup(t.Days)
	efficiencyAdj := p.efficiency.Lookup(t.Pace())
	bonusFactor := 1.0 + durationAdj + efficiencyAdj

	subtotal := perDiem + mileage + receipts
	return Breakdown{
		Policy:   LegacyTieredName,
		PerDiem:  perDiem,
		Mileage:  mileage,
		Receipts: receipts,
		Subtotal: subtotal,
		Adjustments: []Adjustment{
			{Name: "duration_adjustment", Value: durationAdj},
			{Name: "efficiency_adjustment", Value: efficiencyAdj},
			{Name: "bonus_factor", Value: bonusFactor},
		},
		Refund: Round2(subtotal * bonusFactor),
	}
}
