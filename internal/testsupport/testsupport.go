// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"rollcall/internal/config"
	"rollcall/internal/mapping"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Mapping.DBPath = filepath.Join(base, "mappings.db")
	cfg.Logging.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSolver points the config at a solver endpoint and enables it.
func WithSolver(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Solver.Enabled = true
		cfg.Solver.URL = url
	}
}

// WithBaseURL overrides the provider base URL, typically with an httptest
// server address.
func WithBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Provider.BaseURL = url
	}
}

// MustOpenStore opens a mapping store against the test config's database and
// registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *mapping.Store {
	t.Helper()

	store, err := mapping.Open(cfg)
	if err != nil {
		t.Fatalf("open mapping store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close mapping store: %v", err)
		}
	})
	return store
}

// WriteFile writes contents to a file under dir, creating parents, and
// returns the path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
