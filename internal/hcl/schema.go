package hcl

import "github.com/zclconf/go-cty/cty"

// fileRoot is a struct used to decode all top-level blocks of a document.
type fileRoot struct {
	Policies []*PolicyBlock `hcl:"policy,block"`
}

// PolicyBlock represents a `policy` block: every constant of one pricing
// strategy.
type PolicyBlock struct {
	Name        string        `hcl:"name,label"`
	Description string        `hcl:"description,optional"`
	Params      *cty.Value    `hcl:"params,optional"`
	Tiers       []*TiersBlock `hcl:"tiers,block"`
	Bands       []*BandsBlock `hcl:"bands,block"`
}

// TiersBlock represents a cumulative tier schedule.
type TiersBlock struct {
	Name  string       `hcl:"name,label"`
	Tiers []*TierBlock `hcl:"tier,block"`
}

// TierBlock is one tier. Omitting width makes it unbounded.
type TierBlock struct {
	Width *float64 `hcl:"width,optional"`
	Rate  float64  `hcl:"rate"`
}

// BandsBlock represents an ordered range table.
type BandsBlock struct {
	Name    string       `hcl:"name,label"`
	Default float64      `hcl:"default"`
	Bands   []*BandBlock `hcl:"band,block"`
}

// BandBlock is one row of a range table.
type BandBlock struct {
	From  *float64 `hcl:"from,optional"`
	Above *float64 `hcl:"above,optional"`
	To    *float64 `hcl:"to,optional"`
	Below *float64 `hcl:"below,optional"`
	Value float64  `hcl:"value"`
}
