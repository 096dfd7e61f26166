package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"

	"github.com/vidgate/vidgate-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vidgate", "cli.yaml")
	}
	return filepath.Join(homeDir, ".vidgate", "cli.yaml")
}

// Load reads the CLI configuration. A missing file yields defaults;
// VIDGATE_ environment variables override file values.
func Load(path string) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()

	opts := []confloader.Option{}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, fmt.Errorf("load cli config: %w", err)
	}
	return cfg, nil
}

// Save writes the CLI configuration as YAML with owner-only
// permissions.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(rawProvider{
		"server": cfg.Server,
		"output": cfg.Output,
	}, nil); err != nil {
		return err
	}
	data, err := k.Marshal(yaml.Parser())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// rawProvider feeds a literal map into koanf.
type rawProvider map[string]any

func (p rawProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("config: ReadBytes not supported")
}

func (p rawProvider) Read() (map[string]any, error) {
	return p, nil
}
