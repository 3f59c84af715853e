package retry

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

func TestNeo4jErrorClassifier_NilError(t *testing.T) {
	c := NewNeo4jErrorClassifier()
	if c.IsTransient(nil) {
		t.Error("nil error must not be transient")
	}
}

func TestNeo4jErrorClassifier_ServerCodes(t *testing.T) {
	c := NewNeo4jErrorClassifier()

	tests := []struct {
		name      string
		code      string
		transient bool
	}{
		{"database unavailable (transient class)", "Neo.TransientError.General.DatabaseUnavailable", true},
		{"memory pool out of memory", "Neo.TransientError.General.MemoryPoolOutOfMemoryError", true},
		{"transaction lock timeout", "Neo.TransientError.Transaction.LockAcquisitionTimeout", true},
		{"database unavailable (database class)", "Neo.DatabaseError.General.DatabaseUnavailable", true},
		{"not a leader", "Neo.ClientError.Cluster.NotALeader", true},
		{"auth failure", "Neo.ClientError.Security.Unauthorized", false},
		{"credentials expired", "Neo.ClientError.Security.CredentialsExpired", false},
		{"syntax error", "Neo.ClientError.Statement.SyntaxError", false},
		{"database not found", "Neo.ClientError.Database.DatabaseNotFound", false},
		{"constraint violation", "Neo.ClientError.Schema.ConstraintValidationFailed", false},
		{"unknown database error", "Neo.DatabaseError.General.UnknownError", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &db.Neo4jError{Code: tt.code, Msg: tt.name}
			if got := c.IsTransient(err); got != tt.transient {
				t.Errorf("IsTransient(%s) = %v, want %v", tt.code, got, tt.transient)
			}
		})
	}
}

func TestNeo4jErrorClassifier_WrappedServerCode(t *testing.T) {
	c := NewNeo4jErrorClassifier()

	inner := &db.Neo4jError{Code: "Neo.ClientError.Security.Unauthorized", Msg: "bad password"}
	wrapped := fmt.Errorf("connection attempt failed: %w", inner)

	if c.IsTransient(wrapped) {
		t.Error("wrapped auth error must stay fatal")
	}
}

func TestNeo4jErrorClassifier_NetworkErrors(t *testing.T) {
	c := NewNeo4jErrorClassifier()

	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			"connection refused",
			&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			true,
		},
		{
			"connection reset",
			&net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET},
			true,
		},
		{
			"host unreachable",
			&net.OpError{Op: "dial", Net: "tcp", Err: syscall.EHOSTUNREACH},
			true,
		},
		{
			"temporary dns failure",
			&net.DNSError{Err: "server misbehaving", Name: "db", IsTemporary: true},
			true,
		},
		{
			// A compose service name does not resolve until its
			// container is up, so lookup failures are retried.
			"unresolvable host",
			&net.DNSError{Err: "no such host", Name: "db", IsNotFound: true},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsTransient(tt.err); got != tt.transient {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
		})
	}
}

func TestNeo4jErrorClassifier_MessagePatterns(t *testing.T) {
	c := NewNeo4jErrorClassifier()

	transient := []string{
		"dial tcp 127.0.0.1:7687: connect: connection refused",
		"read tcp: i/o timeout",
		"unable to retrieve routing table",
		"Connection Pool is full",
		"remote end hung up: unexpected EOF",
	}
	for _, msg := range transient {
		if !c.IsTransient(errors.New(msg)) {
			t.Errorf("expected %q to classify as transient", msg)
		}
	}

	fatal := []string{
		"invalid cypher statement",
		"unsupported URI scheme",
	}
	for _, msg := range fatal {
		if c.IsTransient(errors.New(msg)) {
			t.Errorf("expected %q to classify as fatal", msg)
		}
	}
}
