package db

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// sessionAdapter exposes the neoprobe.Session contract over a driver
// session. All work runs in explicit managed transactions; the driver's
// auto-commit path is never used.
type sessionAdapter struct {
	session neo4j.SessionWithContext
}

// NewSession opens a session against the configured database and adapts
// it to neoprobe.Session.
func NewSession(ctx context.Context, driver neo4j.DriverWithContext, database string) neoprobe.Session {
	session := driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: database,
	})
	return &sessionAdapter{session: session}
}

// ReadSingle runs cypher in a read transaction. A query matching nothing
// returns found=false and no error; absence is a result, not a failure.
func (s *sessionAdapter) ReadSingle(ctx context.Context, cypher string, params map[string]any) (neoprobe.Record, bool, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return toRecord(records[0]), nil
	})
	if err != nil {
		return nil, false, err
	}
	if result == nil {
		return nil, false, nil
	}
	return result.(neoprobe.Record), true, nil
}

// WriteSingle runs cypher in a write transaction and requires exactly one
// returned record.
func (s *sessionAdapter) WriteSingle(ctx context.Context, cypher string, params map[string]any) (neoprobe.Record, error) {
	result, err := s.session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, neoprobe.ErrRecordNotFound
		}
		if len(records) > 1 {
			return nil, fmt.Errorf("expected a single record, got %d", len(records))
		}
		return toRecord(records[0]), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(neoprobe.Record), nil
}

// Write runs cypher in a write transaction and returns the counters from
// the result summary.
func (s *sessionAdapter) Write(ctx context.Context, cypher string, params map[string]any) (neoprobe.WriteSummary, error) {
	result, err := s.session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		summary, err := res.Consume(ctx)
		if err != nil {
			return nil, err
		}

		counters := summary.Counters()
		return neoprobe.WriteSummary{
			NodesCreated:         counters.NodesCreated(),
			NodesDeleted:         counters.NodesDeleted(),
			RelationshipsCreated: counters.RelationshipsCreated(),
			RelationshipsDeleted: counters.RelationshipsDeleted(),
			PropertiesSet:        counters.PropertiesSet(),
		}, nil
	})
	if err != nil {
		return neoprobe.WriteSummary{}, err
	}
	return result.(neoprobe.WriteSummary), nil
}

// Close releases the underlying session.
func (s *sessionAdapter) Close(ctx context.Context) error {
	return s.session.Close(ctx)
}

func toRecord(record *neo4j.Record) neoprobe.Record {
	rec := make(neoprobe.Record, len(record.Keys))
	for i, key := range record.Keys {
		rec[key] = record.Values[i]
	}
	return rec
}
