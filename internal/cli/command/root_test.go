package command

import (
	"strings"
	"testing"
)

func TestAppCommands(t *testing.T) {
	app := App()

	want := []string{"auth", "videos", "config"}
	for _, name := range want {
		if app.Command(name) == nil {
			t.Errorf("missing command %q", name)
		}
	}
	if !strings.Contains(app.Version, "dev") {
		t.Errorf("version = %q, want build info", app.Version)
	}
}

func TestServerFlagOverridesConfigFile(t *testing.T) {
	env := newCLIEnv(t)

	if _, err := env.run(t, "", "config", "set", "server", "http://stale.example.com"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	backend := newFakeBackend(t)
	if _, err := env.run(t, backend.URL, "auth", "login",
		"--email", "ada@example.com", "--password", "open-sesame"); err != nil {
		t.Fatalf("login via --server flag: %v", err)
	}
}

func TestConfigFileServerUsedWithoutFlag(t *testing.T) {
	env := newCLIEnv(t)
	backend := newFakeBackend(t)

	if _, err := env.run(t, "", "config", "set", "server", backend.URL); err != nil {
		t.Fatalf("config set: %v", err)
	}

	out, err := env.run(t, "", "auth", "login",
		"--email", "ada@example.com", "--password", "open-sesame")
	if err != nil {
		t.Fatalf("login via config file server: %v", err)
	}
	if !strings.Contains(out, "Signed in") {
		t.Errorf("unexpected output: %q", out)
	}
}
