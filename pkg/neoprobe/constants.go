package neoprobe

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3: Panic or unexpected crash
//
// Container orchestrators only distinguish zero from non-zero, so every
// unrecoverable failure (connection exhaustion, failed probe step, bad
// credentials) maps to ExitGeneralError.
const (
	ExitSuccess      = 0 // Probe completed successfully
	ExitGeneralError = 1 // Any unrecoverable failure
	ExitUsageError   = 2 // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultRetryMaxAttempts is the default total number of connection
	// attempts before giving up on a transient failure.
	DefaultRetryMaxAttempts = 60

	// DefaultRetryDelay is the default fixed delay between connection
	// attempts.
	DefaultRetryDelay = 5 * time.Second

	// DefaultRetryMaxDelay caps the delay between attempts when the
	// exponential backoff strategy is selected.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultURI is the Bolt endpoint used when NEO4J_URI is not set.
	DefaultURI = "bolt://localhost:7687"

	// DefaultUsername is used when NEO4J_USER is not set.
	DefaultUsername = "neo4j"

	// DefaultPassword is used when NEO4J_PASSWORD is not set. It matches
	// the credential baked into the docker-compose demo stack; real
	// deployments set NEO4J_PASSWORD.
	DefaultPassword = "secretpassword"

	// DefaultDatabase is used when NEO4J_DATABASE is not set.
	DefaultDatabase = "neo4j"

	// DefaultTaskName is the name written to the demo Task node.
	DefaultTaskName = "Distributed Systems Project Setup"

	// DefaultOwnerName is the name written to the demo Person node.
	DefaultOwnerName = "Project Lead"
)

// Environment variables consulted during connection resolution.
// These match the conventions used by the official Neo4j container images
// and docker-compose setups.
const (
	EnvURI      = "NEO4J_URI"
	EnvUsername = "NEO4J_USER"
	EnvPassword = "NEO4J_PASSWORD"
	EnvDatabase = "NEO4J_DATABASE"
)
