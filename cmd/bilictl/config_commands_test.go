package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"bilictl/internal/api"
)

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "fresh", "config.toml")

	stdout, _, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, stdout, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	_, _, err = runCLI(t, env, "config", "init", "--path", target)
	if err == nil {
		t.Fatal("expected an error without --overwrite")
	}
	requireContains(t, err.Error(), "already exists")
}

func TestConfigValidateReportsPath(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, stdout, "Configuration valid")
}

func TestConfigShowLooksUpDottedKey(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/config", api.RemoteConfig{
		"parallel_download": map[string]any{"video": float64(3), "page": float64(2)},
	})

	stdout, _, err := runCLI(t, env, "config", "show", "--key", "parallel_download.video")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, stdout, "3")

	_, _, err = runCLI(t, env, "config", "show", "--key", "no.such.key")
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	requireContains(t, err.Error(), "unknown config key")
}

func TestConfigEditRoundTripsUnknownFields(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/config", api.RemoteConfig{
		"parallel_download": map[string]any{"video": float64(3)},
		"future_field":      "untouched",
	})

	var gotBody api.RemoteConfig
	env.mux.HandleFunc("PUT /api/config", func(w http.ResponseWriter, r *http.Request) {
		decodeBody(t, r, &gotBody)
		writeEnvelope(w, gotBody)
	})

	stdout, _, err := runCLI(t, env, "config", "edit", "--set", "parallel_download.video=5")
	if err != nil {
		t.Fatalf("config edit: %v", err)
	}
	requireContains(t, stdout, "Updated 1 configuration values")

	section, ok := gotBody["parallel_download"].(map[string]any)
	if !ok {
		t.Fatalf("parallel_download missing from PUT body: %v", gotBody)
	}
	if section["video"] != float64(5) {
		t.Fatalf("video = %v, want 5", section["video"])
	}
	if gotBody["future_field"] != "untouched" {
		t.Fatalf("unknown field lost in round trip: %v", gotBody["future_field"])
	}
}

func TestConfigTestNotifyReportsOutcome(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/config", api.RemoteConfig{
		"notifier": map[string]any{"kind": "telegram"},
	})
	env.handleData("POST /api/config/notifiers/ping", api.TestNotifierResponse{
		Success: true,
		Message: "delivered",
	})

	stdout, _, err := runCLI(t, env, "config", "test-notify")
	if err != nil {
		t.Fatalf("config test-notify: %v", err)
	}
	requireContains(t, stdout, "delivered")
}

func TestConfigTestNotifyRequiresNotifier(t *testing.T) {
	env := setupCLITestEnv(t)

	env.handleData("GET /api/config", api.RemoteConfig{"notifier": nil})

	_, _, err := runCLI(t, env, "config", "test-notify")
	if err == nil {
		t.Fatal("expected an error without a notifier")
	}
	requireContains(t, err.Error(), "no notifier configured")
}
