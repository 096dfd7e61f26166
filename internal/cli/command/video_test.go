package command

import (
	"strings"
	"testing"
)

func TestVideosListTable(t *testing.T) {
	backend := newFakeBackend(t)
	env := newCLIEnv(t)

	if _, err := env.run(t, backend.URL, "auth", "login",
		"--email", "ada@example.com", "--password", "open-sesame"); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := env.run(t, backend.URL, "videos", "list")
	if err != nil {
		t.Fatalf("videos list: %v", err)
	}
	if !strings.Contains(out, "The Inner Game") {
		t.Errorf("missing video title in output: %q", out)
	}
	if !strings.Contains(out, "TITLE") {
		t.Errorf("missing table header in output: %q", out)
	}
}

func TestVideosListJSON(t *testing.T) {
	backend := newFakeBackend(t)
	env := newCLIEnv(t)

	if _, err := env.run(t, backend.URL, "auth", "login",
		"--email", "ada@example.com", "--password", "open-sesame"); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := env.run(t, backend.URL, "--output", "json", "videos", "list")
	if err != nil {
		t.Fatalf("videos list: %v", err)
	}
	if !strings.Contains(out, `"thumbnail_url"`) {
		t.Errorf("expected JSON output, got: %q", out)
	}
}

func TestVideosListRejectedWithoutToken(t *testing.T) {
	backend := newFakeBackend(t)
	env := newCLIEnv(t)

	_, err := env.run(t, backend.URL, "videos", "list")
	if err == nil {
		t.Fatal("expected error without token")
	}
	if err.Error() != "Missing authorization token" {
		t.Errorf("error = %q, want server message", err.Error())
	}
}

func TestVideosPlay(t *testing.T) {
	backend := newFakeBackend(t)
	env := newCLIEnv(t)

	if _, err := env.run(t, backend.URL, "auth", "login",
		"--email", "ada@example.com", "--password", "open-sesame"); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := env.run(t, backend.URL, "videos", "play", backend.videos[0]["id"])
	if err != nil {
		t.Fatalf("videos play: %v", err)
	}
	if !strings.Contains(out, "https://www.youtube.com/embed/abc?enablejsapi=1") {
		t.Errorf("missing embed URL in output: %q", out)
	}
}

func TestVideosPlayRequiresID(t *testing.T) {
	backend := newFakeBackend(t)
	env := newCLIEnv(t)

	if _, err := env.run(t, backend.URL, "videos", "play"); err == nil {
		t.Error("expected usage error without VIDEO_ID")
	}
}

func TestVideosPlayUnknownID(t *testing.T) {
	backend := newFakeBackend(t)
	env := newCLIEnv(t)

	if _, err := env.run(t, backend.URL, "auth", "login",
		"--email", "ada@example.com", "--password", "open-sesame"); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err := env.run(t, backend.URL, "videos", "play", "01JF8Z0V9GQ4T3N2M1K0J9H8FF")
	if err == nil {
		t.Fatal("expected error for unknown video")
	}
	if err.Error() != "Video not found" {
		t.Errorf("error = %q, want server message", err.Error())
	}
}
