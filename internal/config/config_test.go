package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bilictl/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Server.URL != "http://127.0.0.1:12345" {
		t.Fatalf("unexpected server url: %q", cfg.Server.URL)
	}
	wantToken := filepath.Join(tempHome, ".config", "bilictl", "token.json")
	if cfg.Auth.TokenPath != wantToken {
		t.Fatalf("unexpected token path: got %q want %q", cfg.Auth.TokenPath, wantToken)
	}
	if !cfg.Snapshot.Enabled {
		t.Fatal("expected snapshot cache enabled by default")
	}
	if cfg.Output.PageSize != 10 {
		t.Fatalf("unexpected page size: %d", cfg.Output.PageSize)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{filepath.Dir(cfg.Auth.TokenPath), cfg.Snapshot.Dir, cfg.Logging.LogDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
}

func TestLoadParsesFileAndTrimsServerURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := strings.Join([]string{
		"[server]",
		`url = "https://archive.example.com/"`,
		"request_timeout = 5",
		"",
		"[output]",
		"page_size = 25",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}
	if cfg.Server.URL != "https://archive.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Server.URL)
	}
	if cfg.Server.RequestTimeout != 5 {
		t.Fatalf("unexpected request timeout: %d", cfg.Server.RequestTimeout)
	}
	if cfg.Output.PageSize != 25 {
		t.Fatalf("unexpected page size: %d", cfg.Output.PageSize)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{
			name:    "empty server url",
			mutate:  func(c *config.Config) { c.Server.URL = "" },
			wantMsg: "server.url",
		},
		{
			name:    "bad scheme",
			mutate:  func(c *config.Config) { c.Server.URL = "ftp://example.com" },
			wantMsg: "http or https",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *config.Config) { c.Server.RequestTimeout = 0 },
			wantMsg: "request_timeout",
		},
		{
			name:    "zero page size",
			mutate:  func(c *config.Config) { c.Output.PageSize = 0 },
			wantMsg: "page_size",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantMsg: "logging.format",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Server.URL == "" {
		t.Fatal("expected sample to carry a server url")
	}
}
