package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gofsi/internal/fees"
	"github.com/alexiusacademia/gofsi/internal/occupancy"
)

// Config holds gofsi configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Defaults DefaultsConfig `yaml:"defaults"`

	// Extra or replacement occupancy types merged into the built-in table
	Occupancies []occupancy.Type `yaml:"occupancies,omitempty"`

	// Fee rate overrides keyed by material class id
	Fees map[string]fees.Override `yaml:"fees,omitempty"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultsConfig holds default command inputs
type DefaultsConfig struct {
	Occupancy string `yaml:"occupancy"`
	Format    string `yaml:"format"` // text, json, yaml
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Defaults: DefaultsConfig{
			Occupancy: "business",
			Format:    "text",
		},
	}
}

// DefaultPath is ~/.gofsi.yaml, or empty when the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gofsi.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GOFSI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GOFSI_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("GOFSI_DEFAULT_OCCUPANCY"); v != "" {
		c.Defaults.Occupancy = v
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	switch c.Defaults.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid defaults.format %q", c.Defaults.Format)
	}
	return nil
}

// OccupancyTable returns the built-in table extended with configured occupancies
func (c *Config) OccupancyTable() (*occupancy.Table, error) {
	tbl := occupancy.Default()
	if len(c.Occupancies) == 0 {
		return tbl, nil
	}
	ext, err := tbl.Extend(c.Occupancies)
	if err != nil {
		return nil, fmt.Errorf("config occupancies: %w", err)
	}
	return ext, nil
}

// FeeSchedule returns the default fee schedule with configured overrides
func (c *Config) FeeSchedule() (*fees.Schedule, error) {
	return fees.DefaultSchedule().WithOverrides(c.Fees)
}
