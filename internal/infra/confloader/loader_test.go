package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server struct {
		Address string `koanf:"address"`
		Seed    bool   `koanf:"seed"`
	} `koanf:"server"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  address: \"127.0.0.1:9090\"\n  seed: true\nlog:\n  level: debug\n")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1:9090" {
		t.Errorf("address = %q", cfg.Server.Address)
	}
	if !cfg.Server.Seed {
		t.Error("seed not loaded")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: info\n")
	t.Setenv("VIDGATE_LOG_LEVEL", "error")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("level = %q, want env value", cfg.Log.Level)
	}
}

func TestLoadMapOverridesAll(t *testing.T) {
	t.Setenv("VIDGATE_SERVER_ADDRESS", "127.0.0.1:1111")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if err := l.LoadMap(map[string]any{"server.address": "127.0.0.1:2222"}); err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	var cfg testConfig
	if err := l.k.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1:2222" {
		t.Errorf("address = %q, want flag override", cfg.Server.Address)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))).Load(&cfg)
	if err == nil {
		t.Fatal("Load succeeded with missing file")
	}
}
