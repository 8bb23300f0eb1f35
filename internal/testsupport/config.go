// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"bilictl/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Server.URL = "http://127.0.0.1:0"
	cfg.Auth.TokenPath = filepath.Join(base, "token.json")
	cfg.Snapshot.Dir = filepath.Join(base, "cache")
	cfg.Logging.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithServerURL points the test config at a live test server.
func WithServerURL(url string) ConfigOption {
	return func(c *config.Config) {
		c.Server.URL = url
	}
}

// WithSnapshotDisabled turns the snapshot cache off.
func WithSnapshotDisabled() ConfigOption {
	return func(c *config.Config) {
		c.Snapshot.Enabled = false
	}
}
