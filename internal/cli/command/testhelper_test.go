package command

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// fakeBackend is a test HTTP server speaking the VidGate API.
type fakeBackend struct {
	*httptest.Server

	validToken string
	user       map[string]string
	videos     []map[string]string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		validToken: "tok-valid",
		user:       map[string]string{"name": "Ada Lovelace", "email": "ada@example.com"},
		videos: []map[string]string{
			{
				"id":            "01JF8Z0V9GQ4T3N2M1K0J9H8G7",
				"title":         "The Inner Game",
				"description":   "A talk about focus.",
				"thumbnail_url": "https://img.youtube.com/vi/abc/0.jpg",
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Success", "token": b.validToken})
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "open-sesame" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Success", "token": b.validToken})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.validToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, b.user)
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	})
	mux.HandleFunc("GET /dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.validToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Missing authorization token"})
			return
		}
		writeJSON(w, http.StatusOK, b.videos)
	})
	mux.HandleFunc("GET /video/{id}/play", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != b.videos[0]["id"] {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Video not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"embed_url": "https://www.youtube.com/embed/abc?enablejsapi=1",
		})
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Server.Close)
	return b
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// cliEnv holds per-test paths for credential and config storage.
type cliEnv struct {
	credDir    string
	configPath string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	return &cliEnv{
		credDir:    filepath.Join(dir, "cred"),
		configPath: filepath.Join(dir, "cli.yaml"),
	}
}

// run executes the CLI with isolated state and captures stdout.
func (e *cliEnv) run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	app := App()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard

	full := []string{"vidgate-cli", "--config", e.configPath, "--credential-dir", e.credDir}
	if server != "" {
		full = append(full, "--server", server)
	}
	full = append(full, args...)

	err := app.Run(full)
	return out.String(), err
}
