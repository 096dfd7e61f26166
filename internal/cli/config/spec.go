// Package config defines the CLI configuration.
package config

// CLIConfig is the configuration for vidgate-cli, stored as YAML at
// ~/.vidgate/cli.yaml.
type CLIConfig struct {
	// Server is the API server address.
	Server string `koanf:"server" json:"server"`

	// Output is the default output format (table, json).
	Output string `koanf:"output" json:"output"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Server: "http://localhost:5080",
		Output: "table",
	}
}
