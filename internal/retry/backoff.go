package retry

import (
	"math"
	"math/rand"
	"time"
)

// ConstantBackoff waits the same fixed delay between every attempt.
// This is the default strategy: when a probe is waiting for a database
// container to finish starting, spacing attempts evenly is exactly the
// intended behavior.
type ConstantBackoff struct {
	delay       time.Duration
	maxAttempts int
}

// NewConstantBackoff creates a constant backoff with the given total
// attempt budget and fixed inter-attempt delay.
func NewConstantBackoff(maxAttempts int, delay time.Duration) *ConstantBackoff {
	return &ConstantBackoff{
		delay:       delay,
		maxAttempts: maxAttempts,
	}
}

// NextDelay returns the fixed delay regardless of attempt number.
func (b *ConstantBackoff) NextDelay(attempt int) time.Duration {
	return b.delay
}

// MaxAttempts returns the total number of attempts, including the first.
func (b *ConstantBackoff) MaxAttempts() int {
	return b.maxAttempts
}

// Delay returns the configured delay for tests and debugging.
func (b *ConstantBackoff) Delay() time.Duration {
	return b.delay
}

// ExponentialBackoff implements exponential backoff with jitter.
type ExponentialBackoff struct {
	// initialDelay is the delay after the first failed attempt
	initialDelay time.Duration

	// maxDelay is the maximum delay between attempts
	maxDelay time.Duration

	// multiplier is the factor by which delay increases (typically 2.0)
	multiplier float64

	// maxAttempts is the total number of attempts, including the first
	maxAttempts int

	// jitter adds randomness to prevent thundering herd (0.0-1.0)
	// Jitter of 0.1 means +/- 10% randomness
	jitter float64

	// jitterFunc provides random values [0, 1) for jitter calculation
	jitterFunc func() float64
}

// BackoffOption is a functional option for configuring ExponentialBackoff.
type BackoffOption func(*ExponentialBackoff)

// WithInitialDelay sets the delay after the first failed attempt.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.initialDelay = d
	}
}

// WithMaxDelay sets the maximum delay between attempts.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.maxDelay = d
	}
}

// WithMultiplier sets the factor by which delay increases between attempts.
func WithMultiplier(m float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.multiplier = m
	}
}

// WithJitter sets the jitter factor (0.0-1.0) to add randomness to delays.
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.jitter = j
	}
}

// WithJitterFunc sets a custom function for generating random jitter values.
func WithJitterFunc(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.jitterFunc = f
	}
}

// NewExponentialBackoff creates an exponential backoff strategy with
// sensible defaults. Additional configuration can be provided via
// functional options.
//
// Example:
//
//	backoff := retry.NewExponentialBackoff(5,
//	    retry.WithInitialDelay(200 * time.Millisecond),
//	    retry.WithMaxDelay(1 * time.Minute),
//	    retry.WithJitter(0.2),
//	)
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: 100 * time.Millisecond,
		maxDelay:     30 * time.Second,
		multiplier:   2.0,
		maxAttempts:  maxAttempts,
		jitter:       0.1,
		jitterFunc:   nil, // Will use default in NextDelay
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NextDelay calculates the delay for the given attempt using exponential
// backoff.
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	// Base delay: initialDelay * (multiplier ^ attempt)
	exponent := float64(attempt)
	delayMs := float64(b.initialDelay.Milliseconds()) * math.Pow(b.multiplier, exponent)

	// Cap at maxDelay
	if delayMs > float64(b.maxDelay.Milliseconds()) {
		delayMs = float64(b.maxDelay.Milliseconds())
	}

	// Apply jitter to prevent thundering herd
	if b.jitter > 0 {
		jitterFunc := b.jitterFunc
		if jitterFunc == nil {
			// Default: real randomness for production use.
			// Tests should set jitterFunc to a deterministic function.
			jitterFunc = rand.Float64
		}

		randomOffset := (jitterFunc() - 0.5) * 2.0 // Map [0,1) to [-1,1)
		jitterFactor := 1.0 + (b.jitter * randomOffset)
		delayMs *= jitterFactor
	}

	return time.Duration(delayMs) * time.Millisecond
}

// MaxAttempts returns the total number of attempts, including the first.
func (b *ExponentialBackoff) MaxAttempts() int {
	return b.maxAttempts
}

// InitialDelay returns the initial delay for tests and debugging.
func (b *ExponentialBackoff) InitialDelay() time.Duration {
	return b.initialDelay
}

// MaxDelay returns the maximum delay for tests and debugging.
func (b *ExponentialBackoff) MaxDelay() time.Duration {
	return b.maxDelay
}
