package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/reimbursego/internal/ctxlog"
)

// Validate checks that every policy with a Go implementation was defined by
// the document and that the default policy resolves.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting registry validation...")

	var missing []string
	for name := range constructors {
		if _, ok := r.policies[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("registry validation failed: no definition for policies: %s", strings.Join(missing, ", "))
	}

	if r.Default() == nil {
		return fmt.Errorf("registry validation failed: default policy %q is not registered", r.defaultName)
	}

	logger.Debug("Registry validation successful.", "policies", len(r.policies))
	return nil
}
