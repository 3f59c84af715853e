package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `connection:
  uri: bolt://graph:7687
  username: probe
  database: smoketest
  retry:
    max_attempts: 20
    delay: 2s
    max_delay: 30s
    backoff: exponential

probe:
  task_name: Nightly smoke probe
  owner_name: Platform Team
  cleanup_after: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bolt://graph:7687", cfg.Connection.URI)
	assert.Equal(t, "probe", cfg.Connection.Username)
	assert.Equal(t, "smoketest", cfg.Connection.Database)
	assert.Equal(t, 20, cfg.Connection.Retry.MaxAttempts)
	assert.Equal(t, "2s", cfg.Connection.Retry.Delay)
	assert.Equal(t, "30s", cfg.Connection.Retry.MaxDelay)
	assert.Equal(t, "exponential", cfg.Connection.Retry.Backoff)
	assert.Equal(t, "Nightly smoke probe", cfg.Probe.TaskName)
	assert.Equal(t, "Platform Team", cfg.Probe.OwnerName)
	assert.True(t, cfg.Probe.CleanupAfter)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `connection:
  uri: bolt://localhost:7687
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bolt://localhost:7687", cfg.Connection.URI)
	assert.Empty(t, cfg.Connection.Username)
	assert.Zero(t, cfg.Connection.Retry.MaxAttempts)
	assert.False(t, cfg.Probe.CleanupAfter)
}

func TestLoad_FileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("connection: ["), 0644))

	cfg, err := Load(dir)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://remote:7687")
	t.Setenv("NEO4J_USER", "smoke")
	t.Setenv("NEO4J_PASSWORD", "s3cret")
	t.Setenv("NEO4J_DATABASE", "probe")

	env := FromEnvironment()
	assert.Equal(t, "neo4j://remote:7687", env.URI)
	assert.Equal(t, "smoke", env.Username)
	assert.Equal(t, "s3cret", env.Password)
	assert.Equal(t, "probe", env.Database)
}

func TestFromEnvironment_Unset(t *testing.T) {
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USER", "")
	t.Setenv("NEO4J_PASSWORD", "")
	t.Setenv("NEO4J_DATABASE", "")

	env := FromEnvironment()
	assert.Empty(t, env.URI)
	assert.Empty(t, env.Username)
	assert.Empty(t, env.Password)
	assert.Empty(t, env.Database)
}
