// This file contains the logic for translating HCL schema structs (from
// schema.go) into the format-agnostic model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/reimbursego/internal/config"
	"github.com/specialistvlad/reimbursego/internal/ctxlog"
	"github.com/specialistvlad/reimbursego/internal/ratetable"
)

// translatePolicy converts a policy block into the agnostic model and
// validates every table and schedule it declares.
func (l *Loader) translatePolicy(ctx context.Context, p *PolicyBlock) (*config.PolicyDefinition, error) {
	logger := ctxlog.FromContext(ctx)

	params, err := decodeParams(ctx, p.Params)
	if err != nil {
		return nil, fmt.Errorf("policy %q: %w", p.Name, err)
	}

	def := &config.PolicyDefinition{
		Name:        p.Name,
		Description: p.Description,
		Params:      params,
		Schedules:   make(map[string]ratetable.Schedule, len(p.Tiers)),
		Tables:      make(map[string]ratetable.Table, len(p.Bands)),
	}

	for _, tb := range p.Tiers {
		if _, dup := def.Schedules[tb.Name]; dup {
			return nil, fmt.Errorf("policy %q: tiers %q is defined more than once", p.Name, tb.Name)
		}
		s := translateTiers(tb)
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("policy %q: %w", p.Name, err)
		}
		def.Schedules[s.Name] = s
	}

	for _, bb := range p.Bands {
		if _, dup := def.Tables[bb.Name]; dup {
			return nil, fmt.Errorf("policy %q: bands %q is defined more than once", p.Name, bb.Name)
		}
		t, err := translateBands(bb)
		if err != nil {
			return nil, fmt.Errorf("policy %q: %w", p.Name, err)
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("policy %q: %w", p.Name, err)
		}
		def.Tables[t.Name] = t
	}

	logger.Debug("Policy translated.",
		"policy", def.Name,
		"params", len(def.Params),
		"tiers", len(def.Schedules),
		"bands", len(def.Tables),
	)
	return def, nil
}

func translateTiers(b *TiersBlock) ratetable.Schedule {
	s := ratetable.Schedule{Name: b.Name, Tiers: make([]ratetable.Tier, 0, len(b.Tiers))}
	for _, t := range b.Tiers {
		s.Tiers = append(s.Tiers, ratetable.Tier{Width: t.Width, Rate: t.Rate})
	}
	return s
}

func translateBands(b *BandsBlock) (ratetable.Table, error) {
	t := ratetable.Table{Name: b.Name, Default: b.Default, Bands: make([]ratetable.Band, 0, len(b.Bands))}
	for i, row := range b.Bands {
		band, err := translateBand(row)
		if err != nil {
			return ratetable.Table{}, fmt.Errorf("bands %q row %d: %w", b.Name, i, err)
		}
		t.Bands = append(t.Bands, band)
	}
	return t, nil
}

// translateBand maps from/above and to/below onto inclusive and exclusive
// bounds.
func translateBand(b *BandBlock) (ratetable.Band, error) {
	if b.From != nil && b.Above != nil {
		return ratetable.Band{}, fmt.Errorf("only one of 'from' and 'above' may be set")
	}
	if b.To != nil && b.Below != nil {
		return ratetable.Band{}, fmt.Errorf("only one of 'to' and 'below' may be set")
	}

	band := ratetable.Band{Value: b.Value}
	switch {
	case b.From != nil:
		band.Lower = ratetable.Inclusive(*b.From)
	case b.Above != nil:
		band.Lower = ratetable.Exclusive(*b.Above)
	}
	switch {
	case b.To != nil:
		band.Upper = ratetable.Inclusive(*b.To)
	case b.Below != nil:
		band.Upper = ratetable.Exclusive(*b.Below)
	}
	return band, nil
}
