package neoprobe

import "time"

// ErrorClassifier determines whether an error is transient (retryable) or fatal.
type ErrorClassifier interface {
	// IsTransient returns true if the error is temporary and the operation
	// should be retried. Authentication failures, malformed addresses and
	// client-side errors are never transient.
	IsTransient(err error) bool
}

// BackoffStrategy calculates the delay before the next connection attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait before the next attempt.
	// attempt is zero-indexed (0 = delay after the first failed attempt).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the total number of attempts, including the
	// first one. A value of 1 means no retries.
	MaxAttempts() int
}
