package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/reimbursego/internal/ctxlog"
	"github.com/specialistvlad/reimbursego/internal/reimburse"
)

// Run prices the configured trip and writes the refund, formatted to two
// decimals, as a single line.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	policy, err := a.registry.Lookup(cfg.Policy)
	if err != nil {
		return fmt.Errorf("failed to resolve policy: %w", err)
	}
	logger.Debug("Policy resolved.", "policy", policy.Name())

	trip := reimburse.Trip{Days: cfg.Days, Miles: cfg.Miles, Receipts: cfg.Receipts}
	breakdown, err := reimburse.Compute(policy, trip)
	if err != nil {
		logger.Debug("Trip rejected.", "days", trip.Days, "miles", trip.Miles, "receipts", trip.Receipts, "error", err)
		return err
	}
	logger.Debug("Refund computed.", "breakdown", breakdown)

	if _, err := fmt.Fprintf(a.outW, "%.2f\n", breakdown.Refund); err != nil {
		return fmt.Errorf("failed to write refund: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
