// Package config loads the optional neoprobe.yaml project file and the
// NEO4J_* environment variables used for connection resolution.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// RetryConfig mirrors the retry block of neoprobe.yaml. Durations are
// strings in time.ParseDuration syntax ("5s", "1m30s").
type RetryConfig struct {
	MaxAttempts int    `yaml:"max_attempts,omitempty"`
	Delay       string `yaml:"delay,omitempty"`
	MaxDelay    string `yaml:"max_delay,omitempty"`
	Backoff     string `yaml:"backoff,omitempty"`
}

type ConnectionConfig struct {
	URI      string      `yaml:"uri,omitempty"`
	Username string      `yaml:"username,omitempty"`
	Database string      `yaml:"database,omitempty"`
	Retry    RetryConfig `yaml:"retry,omitempty"`
}

type ProbeConfig struct {
	TaskName  string `yaml:"task_name,omitempty"`
	OwnerName string `yaml:"owner_name,omitempty"`
	// CleanupAfter removes the demo nodes at the end of the run. The
	// default leaves them in place for inspection.
	CleanupAfter bool `yaml:"cleanup_after,omitempty"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Probe      ProbeConfig      `yaml:"probe"`
}

const ConfigFileName = "neoprobe.yaml"

// Load reads ConfigFileName from sourcePath. The password never comes
// from the file; it is resolved from the environment or an interactive
// prompt.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Environment holds the raw NEO4J_* variables. Empty fields were unset.
type Environment struct {
	URI      string
	Username string
	Password string
	Database string
}

// FromEnvironment reads the NEO4J_* variables. Defaults are applied
// later, during resolution, so precedence over yaml values stays
// observable.
func FromEnvironment() Environment {
	return Environment{
		URI:      os.Getenv(neoprobe.EnvURI),
		Username: os.Getenv(neoprobe.EnvUsername),
		Password: os.Getenv(neoprobe.EnvPassword),
		Database: os.Getenv(neoprobe.EnvDatabase),
	}
}
