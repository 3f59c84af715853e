package retry

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Neo4j status code fragments for classification.
// See: https://neo4j.com/docs/status-codes/current/
const (
	neo4jClassificationTransient = "TransientError"

	// Codes outside the TransientError classification that still
	// indicate the endpoint may recover without client-side changes.
	neo4jCodeDatabaseUnavailable = "Neo.DatabaseError.General.DatabaseUnavailable"
	neo4jCodeNotALeader          = "Neo.ClientError.Cluster.NotALeader"
	neo4jCodeRoutingUnavailable  = "Neo.ClientError.Cluster.Routing"

	// Security codes are always fatal; retrying cannot fix credentials.
	neo4jCodePrefixSecurity = "Neo.ClientError.Security."
)

// Neo4jErrorClassifier implements ErrorClassifier for Neo4j driver errors.
type Neo4jErrorClassifier struct{}

// NewNeo4jErrorClassifier creates a new Neo4j error classifier.
func NewNeo4jErrorClassifier() *Neo4jErrorClassifier {
	return &Neo4jErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *Neo4jErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// A server status code anywhere in the chain decides first. This
	// runs before the ConnectivityError check because the driver wraps
	// auth rejections in connectivity errors during VerifyConnectivity.
	var neoErr *db.Neo4jError
	if errors.As(err, &neoErr) {
		return c.isTransientNeo4jError(neoErr)
	}

	// Driver-level connectivity failures (pool exhaustion, unreachable
	// endpoint, broken routing table) without a server code.
	if neo4j.IsConnectivityError(err) {
		return true
	}

	// Usage errors are programming mistakes (malformed URI, bad session
	// config) and never resolve on their own.
	if neo4j.IsUsageError(err) {
		return false
	}

	if c.isNetworkError(err) {
		return true
	}

	return c.isConnectionError(err)
}

// isTransientNeo4jError checks a server status code for transient
// conditions.
func (c *Neo4jErrorClassifier) isTransientNeo4jError(neoErr *db.Neo4jError) bool {
	if strings.HasPrefix(neoErr.Code, neo4jCodePrefixSecurity) {
		return false
	}

	if neoErr.Classification() == neo4jClassificationTransient {
		return true
	}

	switch {
	case neoErr.Code == neo4jCodeDatabaseUnavailable:
		return true
	case neoErr.Code == neo4jCodeNotALeader:
		return true
	case strings.HasPrefix(neoErr.Code, neo4jCodeRoutingUnavailable):
		return true
	}

	return false
}

// isNetworkError checks for network-level errors.
func (c *Neo4jErrorClassifier) isNetworkError(err error) bool {
	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	// Network operation errors
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Temporary() || opErr.Timeout() {
			return true
		}

		if opErr.Err != nil {
			// Connection refused (server not ready yet)
			if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
				return true
			}

			// Connection reset by peer
			if errors.Is(opErr.Err, syscall.ECONNRESET) {
				return true
			}

			// Network unreachable
			if errors.Is(opErr.Err, syscall.ENETUNREACH) {
				return true
			}

			// Host unreachable
			if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
				return true
			}
		}
	}

	return false
}

// isConnectionError falls back to message patterns for errors that reach
// us as plain strings.
func (c *Neo4jErrorClassifier) isConnectionError(err error) bool {
	errMsg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"broken pipe",
		"unexpected eof",
		"server unavailable",
		"service unavailable",
		"unable to retrieve routing table",
		"connection pool is full",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
