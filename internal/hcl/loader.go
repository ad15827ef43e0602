package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/reimbursego/internal/config"
	"github.com/specialistvlad/reimbursego/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL policy document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses an HCL policy document held in memory and translates it into
// the format-agnostic model.
func (l *Loader) Load(ctx context.Context, filename string, src []byte) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	doc := &config.Document{
		Policies: make(map[string]*config.PolicyDefinition, len(root.Policies)),
	}
	for _, block := range root.Policies {
		if _, dup := doc.Policies[block.Name]; dup {
			return nil, fmt.Errorf("%s: policy %q is defined more than once", filename, block.Name)
		}
		def, err := l.translatePolicy(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		doc.Policies[def.Name] = def
	}

	logger.Debug("HCL loading complete.", "file", filename, "policies", len(doc.Policies))
	return doc, nil
}
