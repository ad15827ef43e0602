package config

import (
	"fmt"

	"github.com/specialistvlad/reimbursego/internal/ratetable"
)

// Document is the unified, format-agnostic representation of a rate-policy
// document.
type Document struct {
	Policies map[string]*PolicyDefinition
}

// PolicyDefinition holds every constant a single pricing policy needs.
type PolicyDefinition struct {
	Name        string
	Description string
	Params      map[string]float64
	Schedules   map[string]ratetable.Schedule
	Tables      map[string]ratetable.Table
}

// Param returns a named scalar or an error naming the policy that lacks it.
func (p *PolicyDefinition) Param(name string) (float64, error) {
	v, ok := p.Params[name]
	if !ok {
		return 0, fmt.Errorf("policy %q: missing param %q", p.Name, name)
	}
	return v, nil
}

// Schedule returns a named tier schedule.
func (p *PolicyDefinition) Schedule(name string) (ratetable.Schedule, error) {
	s, ok := p.Schedules[name]
	if !ok {
		return ratetable.Schedule{}, fmt.Errorf("policy %q: missing tiers %q", p.Name, name)
	}
	return s, nil
}

// Table returns a named range table.
func (p *PolicyDefinition) Table(name string) (ratetable.Table, error) {
	t, ok := p.Tables[name]
	if !ok {
		return ratetable.Table{}, fmt.Errorf("policy %q: missing bands %q", p.Name, name)
	}
	return t, nil
}
