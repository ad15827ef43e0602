package cli

import (
	"errors"

	"github.com/specialistvlad/reimbursego/internal/registry"
	"github.com/specialistvlad/reimbursego/internal/reimburse"
)

// Kind classifies why the process is exiting with an error.
type Kind int

const (
	// KindInternal is anything that is not the user's fault.
	KindInternal Kind = iota
	// KindUsage is a wrong argument count or a misused option.
	KindUsage
	// KindParse is a positional argument that is not a number.
	KindParse
	// KindDomain is a number outside the domain the calculator accepts.
	KindDomain
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindParse:
		return "parse"
	case KindDomain:
		return "domain"
	default:
		return "internal"
	}
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Kind    Kind
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// FromError maps any error returned while running the application onto an
// ExitError. ExitErrors pass through unchanged.
func FromError(err error) *ExitError {
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, reimburse.ErrInvalidTrip):
		return &ExitError{Code: 1, Kind: KindDomain, Message: err.Error()}
	case errors.Is(err, registry.ErrUnknownPolicy):
		return &ExitError{Code: 2, Kind: KindUsage, Message: err.Error()}
	default:
		return &ExitError{Code: 1, Kind: KindInternal, Message: err.Error()}
	}
}

// ToStdout reports whether the message belongs on standard output. Input
// errors the calculator itself defines are printed there, like the result;
// option misuse and internal failures go to standard error.
func (e *ExitError) ToStdout() bool {
	return e.Code == 1 && e.Kind != KindInternal
}
