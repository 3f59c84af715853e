package retry

import (
	"context"
	"time"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// Executor orchestrates connection attempts with delays and error
// classification.
//
// Thread Safety:
// The Executor itself is safe for concurrent use when calling Execute().
// WithOnRetry() returns a NEW instance with the callback configured, so
// each caller can have its own configuration without shared state.
type Executor struct {
	classifier neoprobe.ErrorClassifier
	strategy   neoprobe.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(
	classifier neoprobe.ErrorClassifier,
	strategy neoprobe.BackoffStrategy,
) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
// The callback fires once per incurred delay, before the wait, with the
// one-based number of the attempt that just failed.
//
// This method does NOT modify the receiver; it returns a new instance.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs the operation until it succeeds, fails with a fatal error,
// or the attempt budget is exhausted. The returned error is nil on
// success, the first fatal error, or the last transient error after
// MaxAttempts total attempts.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	maxAttempts := e.strategy.MaxAttempts()

	var lastErr error
	for attempt := 1; ; attempt++ {
		lastErr = operation(ctx)
		if lastErr == nil {
			return nil
		}

		if !e.classifier.IsTransient(lastErr) {
			return lastErr // Fatal, retrying cannot help
		}

		if attempt >= maxAttempts {
			return lastErr // Budget exhausted
		}

		delay := e.strategy.NextDelay(attempt - 1)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		// Wait for the delay, respecting context cancellation.
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
