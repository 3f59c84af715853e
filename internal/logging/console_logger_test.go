package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	logger.Verbose("test message: %s", "value")

	expected := "[VERBOSE] test message: value\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Verbose("test message: %s", "value")

	if buf.Len() != 0 {
		t.Errorf("Expected no output in non-verbose mode, got %q", buf.String())
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Info("attempt %d/%d failed, retrying in %s", 2, 60, "5s")

	expected := "attempt 2/60 failed, retrying in 5s\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Info_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	// A format string with verbs but no args must not be re-interpreted.
	logger.Info("progress: 50%")

	expected := "progress: 50%\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Error("connection failed: %v", "timeout")

	expected := "[ERROR] connection failed: timeout\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("line")
		}()
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 50 {
		t.Errorf("Expected 50 complete lines, got %d", lines)
	}
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()

	// Must not panic or produce output.
	logger.Verbose("v %d", 1)
	logger.Info("i %d", 2)
	logger.Error("e %d", 3)
}
