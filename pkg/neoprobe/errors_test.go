package neoprobe_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, neoprobe.ExitSuccess},
		{"usage error", neoprobe.ErrUsage, neoprobe.ExitUsageError},
		{"wrapped usage error", fmt.Errorf("%w: unknown flag --foo", neoprobe.ErrUsage), neoprobe.ExitUsageError},
		{"invalid config", neoprobe.ErrInvalidConfig, neoprobe.ExitGeneralError},
		{"connection failed", neoprobe.ErrConnectionFailed, neoprobe.ExitGeneralError},
		{"step failed", fmt.Errorf("%w: step %q: boom", neoprobe.ErrStepFailed, "create"), neoprobe.ExitGeneralError},
		{"plain error", errors.New("something went wrong"), neoprobe.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := neoprobe.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		neoprobe.ErrUsage,
		neoprobe.ErrInvalidConfig,
		neoprobe.ErrConnectionFailed,
		neoprobe.ErrStepFailed,
		neoprobe.ErrRecordNotFound,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
