package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/reimbursego/internal/app"
	"github.com/specialistvlad/reimbursego/internal/reimburse"
)

const (
	// UsageMessage is printed when the positional argument count is wrong.
	UsageMessage = "Usage: reimburse [options] <distance> <rate_per_unit> <additional_fees>"

	// NumericMessage is printed when a positional argument is not a number.
	NumericMessage = "All arguments must be numeric."

	positionalCount = 3
)

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("reimburse", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
reimburse - Predict the reimbursement for a business trip.

%s

Arguments:
  distance         Trip duration in days (must be greater than zero).
  rate_per_unit    Miles traveled.
  additional_fees  Total of submitted receipts.

Policies:
  %s (default), %s

Options:
`, UsageMessage, reimburse.LegacyTieredName, reimburse.BandedDiminishingName)
		flagSet.PrintDefaults()
	}

	policyFlag := flagSet.String("policy", reimburse.LegacyTieredName, "Pricing policy to apply.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(terminateFlags(flagSet, args)); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Kind: KindUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", flagSet.NArg())

	if flagSet.NArg() != positionalCount {
		return nil, false, &ExitError{Code: 1, Kind: KindUsage, Message: UsageMessage}
	}

	values := make([]float64, 0, positionalCount)
	for _, raw := range flagSet.Args() {
		v, err := parseNumber(raw)
		if err != nil {
			slog.Debug("Positional argument is not numeric.", "arg", raw, "error", err)
			return nil, false, &ExitError{Code: 1, Kind: KindParse, Message: NumericMessage}
		}
		values = append(values, v)
	}

	config, err := app.NewConfig(app.Config{
		Policy:    *policyFlag,
		Days:      values[0],
		Miles:     values[1],
		Receipts:  values[2],
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Kind: KindUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseNumber accepts anything strconv reads as a float, surrounding spaces
// included. Out-of-range values become ±Inf and are left for the domain
// check to reject.
func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

// terminateFlags inserts "--" where the positionals begin, so a negative
// number such as "-5" or an unknown dash token is read as a positional, not
// a flag. A call with exactly three arguments, none naming a defined flag,
// is all positionals.
func terminateFlags(flagSet *flag.FlagSet, args []string) []string {
	if len(args) == positionalCount && !namesFlag(flagSet, args) {
		return append([]string{"--"}, args...)
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if _, err := parseNumber(arg); err == nil || !strings.HasPrefix(arg, "-") {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		// Skip the separate value of a defined non-boolean flag.
		if f, hasValue := lookupFlag(flagSet, arg); f != nil && !hasValue && !isBoolFlag(f) {
			i++
		}
	}
	return args
}

// namesFlag reports whether any argument names a flag defined on flagSet.
func namesFlag(flagSet *flag.FlagSet, args []string) bool {
	for _, arg := range args {
		if f, _ := lookupFlag(flagSet, arg); f != nil {
			return true
		}
	}
	return false
}

// lookupFlag resolves "-name", "--name" or "-name=value" to its flag.
func lookupFlag(flagSet *flag.FlagSet, arg string) (*flag.Flag, bool) {
	if !strings.HasPrefix(arg, "-") {
		return nil, false
	}
	if _, err := parseNumber(arg); err == nil {
		return nil, false
	}
	name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return flagSet.Lookup(name), hasValue
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
