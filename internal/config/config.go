// Package config loads the scicalc command's configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/scicalc"
)

// Config is the root configuration. The file is JSON with comments and
// trailing commas allowed, or YAML if its name ends in .yaml or .yml.
type Config struct {
	// AngleMode is "degrees" or "radians".
	AngleMode string `json:"angle_mode" yaml:"angle_mode"`
	// LogLevel is "debug", "info", "warn", or "error".
	LogLevel string `json:"log_level" yaml:"log_level"`
	// Echo prints parse trees before results.
	Echo bool `json:"echo" yaml:"echo"`
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/scicalc/config.jsonc or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".scicalc", "config.jsonc")
	}
	return filepath.Join(dir, "scicalc", "config.jsonc")
}

// Load reads a config file and applies defaults. A missing file is not an
// error; the result is the default config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		var cfg Config
		applyDefaults(&cfg)
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse decodes JSONC config file contents and applies defaults.
func Parse(data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return finish(&cfg)
}

// ParseYAML decodes YAML config file contents and applies defaults.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in zero-value fields.
func applyDefaults(cfg *Config) {
	if cfg.AngleMode == "" {
		cfg.AngleMode = scicalc.Degrees.String()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

func (cfg *Config) validate() error {
	if _, err := scicalc.ParseAngleMode(cfg.AngleMode); err != nil {
		return fmt.Errorf("config angle_mode: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	return nil
}

// Mode returns the configured angle mode. It is valid for any Config
// returned from Load or Parse.
func (cfg *Config) Mode() scicalc.AngleMode {
	m, _ := scicalc.ParseAngleMode(cfg.AngleMode)
	return m
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
