package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bilictl/internal/auth"
)

type cliTestEnv struct {
	mux        *http.ServeMux
	server     *httptest.Server
	configPath string
	tokenPath  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tokenPath := filepath.Join(base, "token.json")
	tokens := auth.NewFileStore(tokenPath)
	if err := tokens.Save(auth.State{Token: "secret", SavedAt: time.Now()}); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	configPath := filepath.Join(homeDir, ".config", "bilictl", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[server]\nurl = %q\n\n[auth]\ntoken_path = %q\n\n[snapshot]\nenabled = true\ndir = %q\n\n[output]\npage_size = 5\n\n[logging]\nlog_dir = %q\n",
		server.URL,
		tokenPath,
		filepath.Join(base, "cache"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		mux:        mux,
		server:     server,
		configPath: configPath,
		tokenPath:  tokenPath,
		baseDir:    base,
	}
}

// handleData registers a backend stub that wraps data in the response
// envelope the client unwraps.
func (env *cliTestEnv) handleData(pattern string, data any) {
	env.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, data)
	})
}

func writeEnvelope(w http.ResponseWriter, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status_code":200,"data":%s}`, payload)
}

func decodeBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Errorf("decode request body: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
