package neoprobe

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := runner.Run(ctx, session)
//	if errors.Is(err, neoprobe.ErrStepFailed) {
//	    // A probe step failed against a live database
//	}
var (
	// ErrUsage indicates the command line itself was invalid (unknown
	// flag, malformed arguments). Distinct from ErrInvalidConfig, which
	// covers well-formed but unusable configuration values.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the database endpoint could not be
	// reached within the configured attempt budget.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrStepFailed indicates a probe step failed after a connection
	// was established.
	ErrStepFailed = errors.New("probe step failed")

	// ErrRecordNotFound indicates a query expected to match a record
	// matched nothing. Steps that treat absence as an expected outcome
	// use the found flag on ReadSingle instead of this sentinel.
	ErrRecordNotFound = errors.New("record not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, ExitUsageError (2) for
// command-line misuse, and ExitGeneralError (1) for everything else.
// Orchestrators that only distinguish zero from non-zero see every
// failure the same way.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	default:
		return ExitGeneralError
	}
}
