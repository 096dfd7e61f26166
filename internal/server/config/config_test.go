package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultVerifies(t *testing.T) {
	if err := Verify(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestVerifyAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = "not-an-addr"
	if err := Verify(cfg); err == nil {
		t.Error("malformed addr accepted")
	}
	cfg.Server.Addr = ""
	if err := Verify(cfg); err == nil {
		t.Error("empty addr accepted")
	}
}

func TestVerifyStorageEngine(t *testing.T) {
	cfg := Default()
	cfg.Storage.Engine = "sqlite"
	if err := Verify(cfg); err == nil {
		t.Error("unknown engine accepted")
	}

	cfg.Storage.Engine = "badger"
	cfg.Storage.DataDir = ""
	if err := Verify(cfg); err == nil {
		t.Error("badger without data_dir accepted")
	}

	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	if err := Verify(cfg); err != nil {
		t.Errorf("badger with data_dir rejected: %v", err)
	}
}

func TestVerifyAuth(t *testing.T) {
	cfg := Default()
	cfg.Auth.TokenTTL = -1
	if err := Verify(cfg); err == nil {
		t.Error("negative token_ttl accepted")
	}
}

func TestSanitizeMasksSecret(t *testing.T) {
	cfg := Default()
	cfg.Auth.TokenSecret = "super-secret-value"

	got := Sanitize(cfg)
	if strings.Contains(got.Auth.TokenSecret, "per-secret-val") {
		t.Errorf("secret not masked: %q", got.Auth.TokenSecret)
	}
	if cfg.Auth.TokenSecret != "super-secret-value" {
		t.Error("Sanitize mutated the original")
	}

	cfg.Auth.TokenSecret = "abc"
	if got := Sanitize(cfg); got.Auth.TokenSecret != "****" {
		t.Errorf("short secret mask = %q", got.Auth.TokenSecret)
	}
}
