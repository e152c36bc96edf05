package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("expected exists=false for missing file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Provider.BaseURL != defaultProviderBaseURL {
		t.Errorf("base url = %q, want default", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Language != "en-US" {
		t.Errorf("language = %q, want en-US", cfg.Provider.Language)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[provider]
base_url = "https://beta.crunchyroll.com/"
language = ""

[mapping]
db_path = "` + filepath.Join(dir, "maps.db") + `"

[logging]
level = "DEBUG"
format = "JSON"
log_dir = "` + filepath.Join(dir, "logs") + `"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
	if cfg.Provider.BaseURL != "https://beta.crunchyroll.com" {
		t.Errorf("base url not trimmed: %q", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Language != "en-US" {
		t.Errorf("empty language should fall back to default, got %q", cfg.Provider.Language)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging not lowercased: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "relative base url",
			content: "[provider]\nbase_url = \"crunchyroll.com\"\n",
			wantErr: "provider.base_url",
		},
		{
			name:    "solver enabled without url",
			content: "[solver]\nenabled = true\n",
			wantErr: "solver.url",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestSolverURLEnvFallback(t *testing.T) {
	t.Setenv("ROLLCALL_SOLVER_URL", "http://localhost:8191")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[solver]\nenabled = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Solver.URL != "http://localhost:8191" {
		t.Errorf("solver url = %q, want env fallback", cfg.Solver.URL)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("Load(sample) = exists %v, err %v", exists, err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/x/y")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandPath(~/x/y) = %q", got)
	}

	got, err = ExpandPath("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandPath(/abs/path) = %q, %v", got, err)
	}
}
