package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcneo4j "github.com/testcontainers/testcontainers-go/modules/neo4j"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	Neo4jImage    = "neo4j:5"
	Neo4jUser     = "neo4j"
	Neo4jPassword = "testpassword"
)

type Neo4jContainer struct {
	*tcneo4j.Neo4jContainer
	BoltURI string
}

// StartNeo4j starts a disposable Neo4j container and returns its Bolt URI.
// The caller owns the container and must Terminate it.
func StartNeo4j(ctx context.Context) (*Neo4jContainer, error) {
	ctr, err := tcneo4j.Run(ctx,
		Neo4jImage,
		tcneo4j.WithAdminPassword(Neo4jPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("Bolt enabled on").
				WithStartupTimeout(120*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start neo4j: %w", err)
	}

	uri, err := ctr.BoltUrl(ctx)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get bolt url: %w", err)
	}

	return &Neo4jContainer{Neo4jContainer: ctr, BoltURI: uri}, nil
}
