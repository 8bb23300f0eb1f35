package main

import (
	"net/http"
	"testing"

	"bilictl/internal/api"
	"bilictl/internal/auth"
)

func TestLoginStoresAndVerifiesToken(t *testing.T) {
	env := setupCLITestEnv(t)

	var gotAuth string
	env.mux.HandleFunc("GET /api/video-sources", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, api.SourceCatalog{})
	})

	stdout, _, err := runCLI(t, env, "login", "fresh-token")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	requireContains(t, stdout, "Token stored and verified")
	if gotAuth != "fresh-token" {
		t.Fatalf("verification used %q, want the new token", gotAuth)
	}

	state, err := auth.NewFileStore(env.tokenPath).Load()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if state.Token != "fresh-token" {
		t.Fatalf("stored token = %q", state.Token)
	}
}

func TestLoginRejectsBadToken(t *testing.T) {
	env := setupCLITestEnv(t)

	env.mux.HandleFunc("GET /api/video-sources", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, _, err := runCLI(t, env, "login", "bogus")
	if err == nil {
		t.Fatal("expected an error for a rejected token")
	}
	requireContains(t, err.Error(), "rejected the token")
}

func TestLogoutClearsToken(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env, "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	requireContains(t, stdout, "Token discarded")

	state, err := auth.NewFileStore(env.tokenPath).Load()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if state.Token != "" {
		t.Fatalf("token survived logout: %q", state.Token)
	}
}
