package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nvolker/neoprobe/internal/logging"
	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

func TestWrapConnectionError(t *testing.T) {
	tests := []struct {
		name         string
		errMsg       string
		uri          string
		wantContains string
	}{
		{
			name:         "connection refused",
			errMsg:       "dial tcp 127.0.0.1:7687: connect: connection refused",
			uri:          "bolt://127.0.0.1:7687",
			wantContains: "connection refused at bolt://127.0.0.1:7687",
		},
		{
			name:         "no such host",
			errMsg:       "dial tcp: lookup neo4j-db: no such host",
			uri:          "bolt://neo4j-db:7687",
			wantContains: "cannot resolve host in bolt://neo4j-db:7687",
		},
		{
			name:         "unauthorized",
			errMsg:       "Neo.ClientError.Security.Unauthorized: The client is unauthorized due to authentication failure.",
			uri:          "bolt://localhost:7687",
			wantContains: "authentication rejected by bolt://localhost:7687",
		},
		{
			name:         "authentication variant",
			errMsg:       "authentication failure: invalid principal",
			uri:          "bolt://localhost:7687",
			wantContains: "authentication rejected by bolt://localhost:7687",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := errors.New(tt.errMsg)
			wrapped := wrapConnectionError(orig, tt.uri)

			if !strings.Contains(wrapped.Error(), tt.wantContains) {
				t.Errorf("wrapped error %q does not contain %q", wrapped.Error(), tt.wantContains)
			}
			if !errors.Is(wrapped, orig) {
				t.Error("wrapped error should preserve the original in its chain")
			}
		})
	}
}

func TestWrapConnectionError_Passthrough(t *testing.T) {
	orig := errors.New("something else entirely")
	wrapped := wrapConnectionError(orig, "bolt://localhost:7687")

	if wrapped != orig {
		t.Errorf("unrecognized errors should pass through unchanged, got %q", wrapped.Error())
	}
}

func TestNewConnector_StrategySelection(t *testing.T) {
	logger := logging.NewNullLogger()

	constant := NewConnector(&neoprobe.ConnectionConfig{
		URI:              neoprobe.DefaultURI,
		Username:         neoprobe.DefaultUsername,
		RetryMaxAttempts: 3,
		Backoff:          neoprobe.BackoffConstant,
	}, logger)
	if constant.retryExecutor == nil {
		t.Fatal("expected retry executor to be configured")
	}

	exponential := NewConnector(&neoprobe.ConnectionConfig{
		URI:              neoprobe.DefaultURI,
		Username:         neoprobe.DefaultUsername,
		RetryMaxAttempts: 3,
		Backoff:          neoprobe.BackoffExponential,
	}, logger)
	if exponential.retryExecutor == nil {
		t.Fatal("expected retry executor to be configured")
	}
}

func TestConnector_Connect_InvalidConfig(t *testing.T) {
	connector := NewConnector(&neoprobe.ConnectionConfig{
		URI:              "",
		RetryMaxAttempts: 1,
	}, logging.NewNullLogger())

	_, err := connector.Connect(context.Background())
	if err == nil {
		t.Fatal("expected validation error for empty URI")
	}
	if !errors.Is(err, neoprobe.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got: %v", err)
	}
}
