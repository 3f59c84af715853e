package testing

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/nvolker/neoprobe/internal/testinfra"
	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

var (
	testContainerOnce sync.Once
	testContainerURI  string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		ctx := context.Background()
		container, err := testinfra.StartNeo4j(ctx)
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerURI = container.BoltURI
	})
	return testContainerURI, testContainerErr
}

// GetTestConnection returns connection parameters for the test database.
// Priority: NEOPROBE_TEST_URI env var (with NEOPROBE_TEST_USER and
// NEOPROBE_TEST_PASSWORD) > auto-started testcontainer > skip test.
func GetTestConnection(t *testing.T) neoprobe.ConnectionConfig {
	t.Helper()

	if uri := os.Getenv("NEOPROBE_TEST_URI"); uri != "" {
		cfg := DefaultTestConnection(uri)
		if user := os.Getenv("NEOPROBE_TEST_USER"); user != "" {
			cfg.Username = user
		}
		if pw := os.Getenv("NEOPROBE_TEST_PASSWORD"); pw != "" {
			cfg.Password = pw
		}
		return cfg
	}

	uri, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("NEOPROBE_TEST_URI not set and Docker unavailable: %v", err)
	}

	cfg := DefaultTestConnection(uri)
	cfg.Username = testinfra.Neo4jUser
	cfg.Password = testinfra.Neo4jPassword
	return cfg
}

// DefaultTestConnection builds a connection config with a short retry
// budget suited to tests. The container (or external server) is already
// up by the time the config is used, so long waits only slow failures.
func DefaultTestConnection(uri string) neoprobe.ConnectionConfig {
	return neoprobe.ConnectionConfig{
		URI:              uri,
		Username:         testinfra.Neo4jUser,
		Password:         testinfra.Neo4jPassword,
		Database:         neoprobe.DefaultDatabase,
		RetryMaxAttempts: 3,
		RetryDelay:       neoprobe.DefaultRetryDelay / 5,
		Backoff:          neoprobe.BackoffConstant,
	}
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnection for convenience.
func RequireDatabase(t *testing.T) neoprobe.ConnectionConfig {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnection(t)
}
