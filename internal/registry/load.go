package registry

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/specialistvlad/reimbursego/internal/config"
	"github.com/specialistvlad/reimbursego/internal/ctxlog"
	"github.com/specialistvlad/reimbursego/internal/hcl"
	"github.com/specialistvlad/reimbursego/internal/reimburse"
)

//go:embed policies.hcl
var builtinDocument []byte

const builtinFilename = "policies.hcl"

// constructor builds a Policy from its loaded definition.
type constructor func(def *config.PolicyDefinition) (reimburse.Policy, error)

// constructors maps every policy name the document may define to the Go
// implementation that prices with it.
var constructors = map[string]constructor{
	reimburse.LegacyTieredName: func(def *config.PolicyDefinition) (reimburse.Policy, error) {
		p, err := reimburse.NewLegacyTiered(def)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	reimburse.BandedDiminishingName: func(def *config.PolicyDefinition) (reimburse.Policy, error) {
		p, err := reimburse.NewBandedDiminishing(def)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
}

// Builtin loads the policy document compiled into the binary.
func Builtin(ctx context.Context) (*Registry, error) {
	return Load(ctx, hcl.NewLoader(), builtinFilename, builtinDocument)
}

// Load reads a policy document with loader, builds one policy per block and
// validates the result.
func Load(ctx context.Context, loader config.Loader, filename string, src []byte) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading policy document...", "file", filename)

	doc, err := loader.Load(ctx, filename, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy document: %w", err)
	}

	reg := New(reimburse.LegacyTieredName)
	for name, def := range doc.Policies {
		build, ok := constructors[name]
		if !ok {
			return nil, fmt.Errorf("%s: policy %q has no implementation", filename, name)
		}
		p, err := build(def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if err := reg.Register(p); err != nil {
			return nil, err
		}
		logger.Debug("Policy registered.", "policy", name)
	}

	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	return reg, nil
}
