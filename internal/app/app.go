package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/reimbursego/internal/ctxlog"
	"github.com/specialistvlad/reimbursego/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the main application. The refund line goes
// to outW and diagnostics to logW, so standard output only ever carries the
// result.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg, err := registry.Builtin(ctx)
	if err != nil {
		// The policy document is compiled in, so this is a programmer error.
		panic(fmt.Errorf("failed to load built-in policies: %w", err))
	}
	logger.Debug("Built-in policies loaded.", "policies", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the policies the application was built with.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
