package config

import "context"

// Loader is the interface for a format-specific policy document loader.
type Loader interface {
	// Load parses src, translates it into the format-agnostic model and
	// validates every table and schedule in it. filename is only used in
	// diagnostics.
	Load(ctx context.Context, filename string, src []byte) (*Document, error)
}
