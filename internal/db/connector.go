// Package db wraps the Neo4j driver behind the neoprobe connection and
// session contracts.
package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/nvolker/neoprobe/internal/retry"
	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// Driver pool configuration constants
const (
	// DefaultMaxConnectionPoolSize is deliberately small; the probe runs
	// one session at a time.
	DefaultMaxConnectionPoolSize = 5

	// DefaultConnectionAcquisitionTimeout bounds how long a single
	// attempt blocks before the retry loop classifies and reschedules it.
	DefaultConnectionAcquisitionTimeout = 15 * time.Second
)

// Connector implements neoprobe.Connector for Neo4j endpoints with
// automatic retry on transient unavailability.
type Connector struct {
	config        *neoprobe.ConnectionConfig
	logger        neoprobe.Logger
	retryExecutor *retry.Executor
}

// NewConnector creates a Connector for the given configuration. The
// retry strategy comes from the config: constant delay by default,
// exponential when selected.
func NewConnector(config *neoprobe.ConnectionConfig, logger neoprobe.Logger) *Connector {
	classifier := retry.NewNeo4jErrorClassifier()

	var strategy neoprobe.BackoffStrategy
	switch config.Backoff {
	case neoprobe.BackoffExponential:
		strategy = retry.NewExponentialBackoff(config.RetryMaxAttempts,
			retry.WithInitialDelay(config.RetryDelay),
			retry.WithMaxDelay(config.RetryMaxDelay),
		)
	default:
		strategy = retry.NewConstantBackoff(config.RetryMaxAttempts, config.RetryDelay)
	}

	executor := retry.NewExecutor(classifier, strategy).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Info("Connection attempt %d/%d failed. Retrying in %s...",
				attempt, config.RetryMaxAttempts, delay)
			logger.Verbose("Error detail: %v", err)
		})

	return &Connector{
		config:        config,
		logger:        logger,
		retryExecutor: executor,
	}
}

// Connect establishes a verified connection to the endpoint. Each attempt
// constructs a driver and performs a connectivity round-trip; a driver
// that failed verification is closed before the next attempt. On success
// the caller owns the returned driver and must close it on every exit
// path.
func (c *Connector) Connect(ctx context.Context) (neo4j.DriverWithContext, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	auth := neo4j.BasicAuth(c.config.Username, c.config.Password, "")

	var driver neo4j.DriverWithContext
	err := c.retryExecutor.Execute(ctx, func(ctx context.Context) error {
		d, err := neo4j.NewDriverWithContext(c.config.URI, auth, func(cfg *neo4j.Config) {
			cfg.MaxConnectionPoolSize = DefaultMaxConnectionPoolSize
			cfg.ConnectionAcquisitionTimeout = DefaultConnectionAcquisitionTimeout
			// Encryption is selected by the URI scheme (bolt:// vs
			// bolt+s://), not configured here.
		})
		if err != nil {
			return wrapConnectionError(err, c.config.URI)
		}

		// Construction alone proves nothing; verify with a round-trip.
		if err := d.VerifyConnectivity(ctx); err != nil {
			_ = d.Close(ctx)
			return wrapConnectionError(err, c.config.URI)
		}

		driver = d
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", neoprobe.ErrConnectionFailed, err)
	}

	c.logger.Info("Neo4j connection established at %s", c.config.URI)
	return driver, nil
}

// wrapConnectionError wraps raw driver errors with actionable guidance.
func wrapConnectionError(err error, uri string) error {
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "connection refused"):
		return fmt.Errorf(`connection refused at %s

Possible causes:
  - Neo4j is not running or still starting up
  - Wrong host or port in the URI
  - Firewall blocking the connection

Original error: %w`, uri, err)

	case strings.Contains(errStr, "no such host"):
		return fmt.Errorf(`cannot resolve host in %s

Possible causes:
  - Hostname is misspelled
  - The database container has not joined the network yet
  - DNS is not configured or reachable

Original error: %w`, uri, err)

	case strings.Contains(errStr, "unauthorized") || strings.Contains(errStr, "authentication"):
		return fmt.Errorf(`authentication rejected by %s

Possible causes:
  - Wrong NEO4J_USER or NEO4J_PASSWORD
  - The server enforces a password change on first login

Original error: %w`, uri, err)

	default:
		return err
	}
}
