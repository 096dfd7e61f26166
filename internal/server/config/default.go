package config

import "time"

// Default configuration values.
const (
	DefaultAddr            = "127.0.0.1:5080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	DefaultStorageEngine = EngineMemory
	DefaultDataDir       = "/var/lib/vidgate-server/data"

	DefaultTokenTTL                  = 24 * time.Hour
	DefaultCredentialAttemptsPerHour = 10

	DefaultRequestsPerSecond = 50.0
	DefaultBurst             = 100

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Storage: StorageSection{
			Engine:  DefaultStorageEngine,
			DataDir: DefaultDataDir,
		},
		Auth: AuthSection{
			TokenTTL:                  DefaultTokenTTL,
			CredentialAttemptsPerHour: DefaultCredentialAttemptsPerHour,
		},
		Limits: LimitsSection{
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
		Catalog: CatalogSection{
			Seed: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
