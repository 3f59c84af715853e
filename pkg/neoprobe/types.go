package neoprobe

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BackoffKind selects the delay strategy used between connection attempts.
type BackoffKind string

const (
	// BackoffConstant waits the same fixed delay between every attempt.
	// This is the default and mirrors container startup ordering waits.
	BackoffConstant BackoffKind = "constant"

	// BackoffExponential doubles the delay after each failed attempt,
	// capped at RetryMaxDelay.
	BackoffExponential BackoffKind = "exponential"
)

// ConnectionConfig holds the parameters needed to reach a Neo4j endpoint.
// It is constructed once at process start and passed explicitly to the
// connector and probe runner; there is no package-level connection state.
type ConnectionConfig struct {
	// URI is the Bolt endpoint, e.g. "bolt://localhost:7687" or
	// "neo4j+s://host:7687". Encryption is selected by the URI scheme.
	URI string

	// Username and Password form the basic-auth credential pair.
	Username string
	Password string

	// Database is the target database name for all sessions.
	Database string

	// RetryMaxAttempts is the total number of connection attempts,
	// including the first. Must be at least 1.
	RetryMaxAttempts int

	// RetryDelay is the delay between attempts (the base delay for the
	// exponential strategy).
	RetryDelay time.Duration

	// RetryMaxDelay caps the delay for the exponential strategy.
	RetryMaxDelay time.Duration

	// Backoff selects the delay strategy. Empty means BackoffConstant.
	Backoff BackoffKind
}

// Validate checks if the ConnectionConfig has all required fields and
// valid values. It returns a multi-error if multiple validation failures
// occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.URI == "" {
		errs = append(errs, fmt.Errorf("URI is required: %w", ErrInvalidConfig))
	} else if !strings.Contains(c.URI, "://") {
		errs = append(errs, fmt.Errorf("URI %q has no scheme: %w", c.URI, ErrInvalidConfig))
	}

	if c.Username == "" {
		errs = append(errs, fmt.Errorf("Username is required: %w", ErrInvalidConfig))
	}

	if c.RetryMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("RetryMaxAttempts must be at least 1, got %d: %w",
			c.RetryMaxAttempts, ErrInvalidConfig))
	}

	if c.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("RetryDelay cannot be negative: %w", ErrInvalidConfig))
	}

	switch c.Backoff {
	case "", BackoffConstant, BackoffExponential:
	default:
		errs = append(errs, fmt.Errorf("unknown backoff kind %q: %w", c.Backoff, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ProbeConfig contains all parameters for one probe run.
type ProbeConfig struct {
	// Connection describes the target endpoint.
	Connection ConnectionConfig

	// TaskName is the name property written to the demo Task node.
	TaskName string

	// OwnerName is the name property written to the demo Person node
	// during the expand step.
	OwnerName string

	// KeepData skips the cleanup of probe-created nodes after the run,
	// leaving them in the database for inspection.
	KeepData bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks the ProbeConfig, including the embedded connection.
func (c *ProbeConfig) Validate() error {
	var errs []error

	if err := c.Connection.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.TaskName == "" {
		errs = append(errs, fmt.Errorf("TaskName is required: %w", ErrInvalidConfig))
	}

	if c.OwnerName == "" {
		errs = append(errs, fmt.Errorf("OwnerName is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
