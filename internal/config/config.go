package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spachava753/esncontact/addressbook"
	"github.com/spachava753/esncontact/display"
)

const (
	envDatabasePath  = "ESNCONTACT_DB"
	envPathPrefix    = "ESNCONTACT_PATH_PREFIX"
	envDefaultAvatar = "ESNCONTACT_DEFAULT_AVATAR"
)

// Config holds esncontact configuration.
type Config struct {
	// SQLite contact cache
	DatabasePath string `yaml:"database_path"`

	// Prefix of addressbook paths, e.g. /esn-sabre/esn.php
	PathPrefix string `yaml:"path_prefix"`

	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig configures contact shells.
type DisplayConfig struct {
	DefaultAvatar string `yaml:"default_avatar"`
	AvatarSize    int    `yaml:"avatar_size"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath: "esncontact.db",
		PathPrefix:   addressbook.DefaultPrefix,
		Display: DisplayConfig{
			DefaultAvatar: display.DefaultAvatarPath,
			AvatarSize:    128,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(envDatabasePath)); v != "" {
		c.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv(envPathPrefix)); v != "" {
		c.PathPrefix = v
	}
	if v := strings.TrimSpace(os.Getenv(envDefaultAvatar)); v != "" {
		c.Display.DefaultAvatar = v
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("config: database_path is required (or set %s)", envDatabasePath)
	}
	if c.Display.AvatarSize <= 0 {
		return fmt.Errorf("config: display.avatar_size must be positive, got %d", c.Display.AvatarSize)
	}
	for _, level := range ValidLogLevels {
		if c.Logging.Level == level {
			return nil
		}
	}
	return fmt.Errorf("config: invalid logging.level %q (valid: %v)", c.Logging.Level, ValidLogLevels)
}

// ShellOptions returns the display options implied by the configuration.
func (c *Config) ShellOptions() []display.Option {
	return []display.Option{display.WithDefaultAvatar(c.Display.DefaultAvatar)}
}
