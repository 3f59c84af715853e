package cli

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/nvolker/neoprobe/internal/config"
	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// runFlags holds the raw flag values of the run command. Empty strings
// and zero counts mean "not provided"; the boolean carries an explicit
// set marker because false is a meaningful value.
type runFlags struct {
	uri           string
	username      string
	database      string
	retryAttempts int
	retryDelay    string
	retryMaxDelay string
	backoff       string
	taskName      string
	ownerName     string
	cleanup       bool
	cleanupSet    bool
}

// resolveProbeConfig consolidates connection and probe resolution.
// Precedence: flags > environment > neoprobe.yaml > documented defaults.
// project may be nil when no config file exists.
func resolveProbeConfig(flags *runFlags, env config.Environment, project *config.ProjectConfig) (*neoprobe.ProbeConfig, error) {
	var yamlConn config.ConnectionConfig
	var yamlProbe config.ProbeConfig
	if project != nil {
		yamlConn = project.Connection
		yamlProbe = project.Probe
	}

	delay, err := resolveDuration("retry-delay", flags.retryDelay, yamlConn.Retry.Delay, neoprobe.DefaultRetryDelay)
	if err != nil {
		return nil, err
	}
	maxDelay, err := resolveDuration("retry-max-delay", flags.retryMaxDelay, yamlConn.Retry.MaxDelay, neoprobe.DefaultRetryMaxDelay)
	if err != nil {
		return nil, err
	}

	attempts := flags.retryAttempts
	if attempts == 0 {
		attempts = yamlConn.Retry.MaxAttempts
	}
	if attempts == 0 {
		attempts = neoprobe.DefaultRetryMaxAttempts
	}

	cleanup := yamlProbe.CleanupAfter
	if flags.cleanupSet {
		cleanup = flags.cleanup
	}

	cfg := &neoprobe.ProbeConfig{
		Connection: neoprobe.ConnectionConfig{
			URI:              firstNonEmpty(flags.uri, env.URI, yamlConn.URI, neoprobe.DefaultURI),
			Username:         firstNonEmpty(flags.username, env.Username, yamlConn.Username, neoprobe.DefaultUsername),
			Password:         resolvePassword(env),
			Database:         firstNonEmpty(flags.database, env.Database, yamlConn.Database, neoprobe.DefaultDatabase),
			RetryMaxAttempts: attempts,
			RetryDelay:       delay,
			RetryMaxDelay:    maxDelay,
			Backoff:          neoprobe.BackoffKind(firstNonEmpty(flags.backoff, yamlConn.Retry.Backoff, string(neoprobe.BackoffConstant))),
		},
		TaskName:  firstNonEmpty(flags.taskName, yamlProbe.TaskName, neoprobe.DefaultTaskName),
		OwnerName: firstNonEmpty(flags.ownerName, yamlProbe.OwnerName, neoprobe.DefaultOwnerName),
		KeepData:  !cleanup,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePassword returns the first available credential source:
// NEO4J_PASSWORD, an interactive prompt when stdin is a terminal, then
// the documented demo default.
func resolvePassword(env config.Environment) string {
	if env.Password != "" {
		return env.Password
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Password for %s: ", firstNonEmpty(env.Username, neoprobe.DefaultUsername))
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err == nil && len(pw) > 0 {
			return string(pw)
		}
	}

	return neoprobe.DefaultPassword
}

func resolveDuration(name, flagValue, yamlValue string, fallback time.Duration) (time.Duration, error) {
	raw := firstNonEmpty(flagValue, yamlValue)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, neoprobe.ErrInvalidConfig)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s cannot be negative: %w", name, neoprobe.ErrInvalidConfig)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
