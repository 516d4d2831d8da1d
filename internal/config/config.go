// Package config handles the XDG configuration directory, the optional
// YAML config file, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "remind-mcp"

	// ConfigFile is the optional YAML configuration filename.
	ConfigFile = "config.yaml"
)

// Defaults for the execution boundary. The timeout and output cap apply to
// every osascript invocation and are configurable only here, not per call.
const (
	DefaultTimeoutSeconds = 30
	DefaultMaxOutputBytes = 10 << 20
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Osascript is the interpreter binary; "osascript" when empty.
	Osascript string `yaml:"osascript"`

	// TimeoutSeconds is the per-invocation wall-clock budget.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxOutputBytes caps captured subprocess output.
	MaxOutputBytes int64 `yaml:"max_output_bytes"`
}

// New creates a Config from the default or specified config directory,
// loading config.yaml if present and then applying environment overrides
// (REMIND_MCP_OSASCRIPT, REMIND_MCP_TIMEOUT_SECONDS,
// REMIND_MCP_MAX_OUTPUT_BYTES).
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:            dir,
		TimeoutSeconds: DefaultTimeoutSeconds,
		MaxOutputBytes: DefaultMaxOutputBytes,
	}

	data, err := os.ReadFile(cfg.FilePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.FilePath(), err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", cfg.FilePath(), err)
		}
	}

	if v := os.Getenv("REMIND_MCP_OSASCRIPT"); v != "" {
		cfg.Osascript = v
	}
	if v := os.Getenv("REMIND_MCP_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REMIND_MCP_TIMEOUT_SECONDS: %q", v)
		}
		cfg.TimeoutSeconds = n
	}
	if v := os.Getenv("REMIND_MCP_MAX_OUTPUT_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid REMIND_MCP_MAX_OUTPUT_BYTES: %q", v)
		}
		cfg.MaxOutputBytes = n
	}

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.MaxOutputBytes <= 0 {
		cfg.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to the YAML config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// Timeout returns the per-invocation wall-clock budget.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
