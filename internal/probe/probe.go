// Package probe implements the scripted operation sequence that exercises
// a live graph database: cleanup, create, read, update, expand, verify.
//
// Each step is a named unit running against the narrow Session contract,
// so the sequence can be exercised end to end against a real database or
// step by step against a fake session.
package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// Step is one unit of the fixed operation sequence. Run returns a short
// human-readable detail line on success.
type Step struct {
	Name string
	Run  func(ctx context.Context, session neoprobe.Session) (string, error)
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Name     string
	Detail   string
	Duration time.Duration
	Err      error
}

// Report summarizes a probe run.
type Report struct {
	RunID   string
	Results []StepResult
}

// Failed reports whether any executed step failed.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// Runner executes the probe sequence in order, stopping at the first
// failure.
//
// Thread-Safety: NOT safe for concurrent Run() calls on the same
// instance. Create separate instances for concurrent probes.
type Runner struct {
	config neoprobe.ProbeConfig
	logger neoprobe.Logger
	runID  string
}

// NewRunner creates a Runner for one probe run. Every run gets a fresh
// UUID; created nodes carry it so the verify step provably reads this
// run's writes and cleanup only ever touches probe-owned data.
// Panics if logger is nil.
func NewRunner(config neoprobe.ProbeConfig, logger neoprobe.Logger) *Runner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Runner{
		config: config,
		logger: logger,
		runID:  uuid.NewString(),
	}
}

// RunID returns the identifier tagged onto every node this run creates.
func (r *Runner) RunID() string {
	return r.runID
}

// Steps returns the ordered sequence for this run. The teardown step is
// appended only when KeepData is false; by default the demo nodes stay in
// the database for inspection.
func (r *Runner) Steps() []Step {
	steps := []Step{
		{Name: "cleanup", Run: r.cleanup},
		{Name: "create", Run: r.create},
		{Name: "read", Run: r.read},
		{Name: "update", Run: r.update},
		{Name: "expand", Run: r.expand},
		{Name: "verify", Run: r.verify},
	}
	if !r.config.KeepData {
		steps = append(steps, Step{Name: "teardown", Run: r.cleanup})
	}
	return steps
}

// Run executes the sequence against the session. The first failing step
// stops the run; its error is wrapped with ErrStepFailed and returned
// alongside the report of everything executed so far.
func (r *Runner) Run(ctx context.Context, session neoprobe.Session) (*Report, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}

	report := &Report{RunID: r.runID}
	steps := r.Steps()

	r.logger.Info("--- Starting probe run %s ---", r.runID)

	for i, step := range steps {
		start := time.Now()
		detail, err := step.Run(ctx, session)
		result := StepResult{
			Name:     step.Name,
			Detail:   detail,
			Duration: time.Since(start),
			Err:      err,
		}
		report.Results = append(report.Results, result)

		if err != nil {
			r.logger.Error("%d. %s failed: %v", i+1, step.Name, err)
			return report, fmt.Errorf("%w: step %q: %w", neoprobe.ErrStepFailed, step.Name, err)
		}
		r.logger.Info("%d. %s successful. %s", i+1, step.Name, detail)
	}

	r.logger.Info("--- Probe run %s complete ---", r.runID)
	return report, nil
}

// stringValue extracts a string field from a record, failing loudly on
// missing keys or unexpected types instead of panicking on assertion.
func stringValue(rec neoprobe.Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("result has no %q column", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("result column %q is %T, expected string", key, v)
	}
	return s, nil
}
