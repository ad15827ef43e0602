package reimburse

import (
	"github.com/specialistvlad/reimbursego/internal/config"
	"github.com/specialistvlad/reimbursego/internal/ratetable"
)

// BandedDiminishingName is the registry name of the BandedDiminishing policy.
const BandedDiminishingName = "banded-diminishing"

// BandedDiminishing prices mileage and receipts on diminishing cumulative
// tiers, scales the per-diem by trip length, adds a flat pace bonus or
// penalty and discounts long trips with high daily spend.
type BandedDiminishing struct {
	perDiemRate        float64
	mileage            ratetable.Schedule
	receipts           ratetable.Schedule
	perDiemMultiplier  ratetable.Table
	efficiencyBonus    ratetable.Table
	vacationMinDays    float64
	vacationDailySpend float64
	vacationFactor     float64
}

// NewBandedDiminishing builds the policy from its definition. The definition
// must provide params "per_diem_rate", "vacation_min_days",
// "vacation_daily_receipts" and "vacation_factor", tiers "mileage" and
// "receipts", and bands "per_diem_multiplier" and "efficiency_bonus".
func NewBandedDiminishing(def *config.PolicyDefinition) (*BandedDiminishing, error) {
	p := &BandedDiminishing{}
	var err error
	if p.perDiemRate, err = def.Param("per_diem_rate"); err != nil {
		return nil, err
	}
	if p.vacationMinDays, err = def.Param("vacation_min_days"); err != nil {
		return nil, err
	}
	if p.vacationDailySpend, err = def.Param("vacation_daily_receipts"); err != nil {
		return nil, err
	}
	if p.vacationFactor, err = def.Param("vacation_factor"); err != nil {
		return nil, err
	}
	if p.mileage, err = def.Schedule("mileage"); err != nil {
		return nil, err
	}
	if p.receipts, err = def.Schedule("receipts"); err != nil {
		return nil, err
	}
	if p.perDiemMultiplier, err = def.Table("per_diem_multiplier"); err != nil {
		return nil, err
	}
	if p.efficiencyBonus, err = def.Table("efficiency_bonus"); err != nil {
		return nil, err
	}
	return p, nil
}

// Name implements Policy.
func (p *BandedDiminishing) Name() string { return BandedDiminishingName }

// Price implements Policy. The vacation discount scales the running total,
// so it applies after the pace bonus.
func (p *BandedDiminishing) Price(t Trip) Breakdown {
	mileage := p.mileage.Apply(t.Miles)
	receipts := p.receipts.Apply(t.Receipts)
	multiplier := p.perDiemMultiplier.Lookup(t.Days)
	perDiem := p.perDiemRate * t.Days * multiplier

	subtotal := mileage + receipts + perDiem
	bonus := p.efficiencyBonus.Lookup(t.Pace())
	total := subtotal + bonus

	vacation := 1.0
	if t.Days >= p.vacationMinDays && t.Receipts/t.Days > p.vacationDailySpend {
		vacation = p.vacationFactor
		total *= vacation
	}

	return Breakdown{
		Policy:   BandedDiminishingName,
		PerDiem:  perDiem,
		Mileage:  mileage,
		Receipts: receipts,
		Subtotal: subtotal,
		Adjustments: []Adjustment{
			{Name: "per_diem_multiplier", Value: multiplier},
			{Name: "efficiency_bonus", Value: bonus},
			{Name: "vacation_factor", Value: vacation},
		},
		Refund: Round2(total),
	}
}
