package neoprobe

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record is a single query result row keyed by the names in the RETURN
// clause.
type Record map[string]any

// WriteSummary reports the counters of a write statement that returns no
// rows, such as the cleanup DETACH DELETE.
type WriteSummary struct {
	NodesCreated         int
	NodesDeleted         int
	RelationshipsCreated int
	RelationshipsDeleted int
	PropertiesSet        int
}

// Session abstracts the narrow slice of a Neo4j session the probe pipeline
// needs. Every call runs inside an explicit managed transaction
// (ExecuteRead or ExecuteWrite), never an auto-committing one.
//
// This interface decouples probe steps from the driver so step behavior
// can be exercised against an in-memory fake.
type Session interface {
	// ReadSingle runs cypher in a read transaction and returns the first
	// record. found is false when the query matched nothing; that is not
	// an error, and the caller decides whether absence is expected.
	ReadSingle(ctx context.Context, cypher string, params map[string]any) (rec Record, found bool, err error)

	// WriteSingle runs cypher in a write transaction and returns exactly
	// one record. A query that returns no record fails with
	// ErrRecordNotFound.
	WriteSingle(ctx context.Context, cypher string, params map[string]any) (Record, error)

	// Write runs cypher in a write transaction and returns the resulting
	// counters. Used for statements with no RETURN clause.
	Write(ctx context.Context, cypher string, params map[string]any) (WriteSummary, error)

	// Close releases the underlying session.
	Close(ctx context.Context) error
}

// Connector establishes a verified connection to a graph database
// endpoint. Implementations handle retry on transient unavailability.
type Connector interface {
	// Connect returns a driver whose connectivity has been verified by a
	// round-trip check. The caller owns the driver and must close it on
	// every exit path.
	Connect(ctx context.Context) (neo4j.DriverWithContext, error)
}
