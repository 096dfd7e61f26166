package config

import (
	"errors"
	"net"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyAuth(&cfg.Auth); err != nil {
		return err
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Addr == "" {
		return errors.New("server.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return errors.New("server.addr must be host:port: " + err.Error())
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	switch cfg.Engine {
	case EngineMemory:
		return nil
	case EngineBadger:
		if cfg.DataDir == "" {
			return errors.New("storage.data_dir is required for the badger engine")
		}
		if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
			return errors.New("cannot create data directory: " + err.Error())
		}
		return nil
	default:
		return errors.New("storage.engine must be memory or badger")
	}
}

func verifyAuth(cfg *AuthSection) error {
	if cfg.TokenTTL < 0 {
		return errors.New("auth.token_ttl must not be negative")
	}
	if cfg.CredentialAttemptsPerHour < 0 {
		return errors.New("auth.credential_attempts_per_hour must not be negative")
	}
	return nil
}
