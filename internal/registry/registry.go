package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/reimbursego/internal/reimburse"
)

// ErrUnknownPolicy is returned when a lookup names no registered policy.
var ErrUnknownPolicy = errors.New("unknown policy")

// Registry holds the pricing policies available to a single application
// instance, keyed by name.
type Registry struct {
	policies    map[string]reimburse.Policy
	defaultName string
}

// New creates an empty Registry whose default policy is defaultName.
func New(defaultName string) *Registry {
	return &Registry{
		policies:    make(map[string]reimburse.Policy),
		defaultName: defaultName,
	}
}

// Register adds a policy. Names must be unique.
func (r *Registry) Register(p reimburse.Policy) error {
	name := p.Name()
	if _, exists := r.policies[name]; exists {
		return fmt.Errorf("policy %q is already registered", name)
	}
	r.policies[name] = p
	return nil
}

// Lookup returns the policy registered under name.
func (r *Registry) Lookup(name string) (reimburse.Policy, error) {
	p, ok := r.policies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of: %v", ErrUnknownPolicy, name, r.Names())
	}
	return p, nil
}

// Default returns the default policy, or nil if it was never registered.
func (r *Registry) Default() reimburse.Policy {
	return r.policies[r.defaultName]
}

// DefaultName is the name Default resolves.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Names lists the registered policy names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
