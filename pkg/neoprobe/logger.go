package neoprobe

// Logger receives the probe's progress output: connection attempt
// notices, numbered step lines, failures. Implementations must be safe
// for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs diagnostic detail, such as raw driver errors behind a
	// retried attempt. Only emitted when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs the normal progress lines of a run.
	Info(format string, args ...interface{})

	// Error logs failures. Always emitted.
	Error(format string, args ...interface{})
}
