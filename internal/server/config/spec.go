// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for vidgate-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Auth    AuthSection    `koanf:"auth"`
	Limits  LimitsSection  `koanf:"limits"`
	Catalog CatalogSection `koanf:"catalog"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the HTTP listener.
type ServerSection struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Storage engine names.
const (
	EngineMemory = "memory"
	EngineBadger = "badger"
)

// StorageSection selects and configures the storage engine.
type StorageSection struct {
	// Engine is "memory" or "badger".
	Engine string `koanf:"engine"`

	// DataDir is the Badger database directory. Ignored by the
	// memory engine.
	DataDir string `koanf:"data_dir"`
}

// AuthSection configures token issuance and credential limits.
type AuthSection struct {
	// TokenSecret signs access tokens. Required in production;
	// a random secret is generated when empty, which invalidates
	// sessions across restarts.
	TokenSecret string `koanf:"token_secret"`

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// CredentialAttemptsPerHour caps login and signup attempts per
	// client IP. Zero disables the limiter.
	CredentialAttemptsPerHour int `koanf:"credential_attempts_per_hour"`
}

// LimitsSection configures the global request rate limiter.
type LimitsSection struct {
	// RequestsPerSecond caps requests per client IP across all routes.
	// Zero disables the limiter.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// Burst is the per-IP burst allowance.
	Burst int `koanf:"burst"`

	// TrustProxy lets X-Forwarded-For identify clients for rate
	// limiting. Enable only behind a trusted reverse proxy.
	TrustProxy bool `koanf:"trust_proxy"`
}

// CatalogSection configures catalog bootstrap.
type CatalogSection struct {
	// Seed inserts the starter catalog at startup.
	Seed bool `koanf:"seed"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
