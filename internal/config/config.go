// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultConfigTOML is the default configuration template for `config init`.
const DefaultConfigTOML = `# shexplain configuration file

# Color output: auto | always | never
color = "auto"

[knowledge]
# Path to the custom command store (JSON). Empty means the default
# location under $XDG_DATA_HOME or ~/.local/share.
custom_path = ""
# Query --help/man for commands missing from the knowledge tables
dynamic_lookup = true
# Timeout in seconds for each --help/man invocation
help_timeout_seconds = 5

[server]
# Listen address for 'shexplain serve'
addr = "127.0.0.1:8717"
`

// Config represents the full configuration for shexplain.
type Config struct {
	Color     string          `toml:"color"`
	Knowledge KnowledgeConfig `toml:"knowledge"`
	Server    ServerConfig    `toml:"server"`
}

// KnowledgeConfig controls the knowledge tables and dynamic extraction.
type KnowledgeConfig struct {
	CustomPath         string `toml:"custom_path"`
	DynamicLookup      bool   `toml:"dynamic_lookup"`
	HelpTimeoutSeconds int    `toml:"help_timeout_seconds"`
}

// ServerConfig holds HTTP API mode configuration.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// HelpTimeout returns the configured help/man timeout as a time.Duration.
func (c *Config) HelpTimeout() time.Duration {
	return time.Duration(c.Knowledge.HelpTimeoutSeconds) * time.Second
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Color: "auto",
		Knowledge: KnowledgeConfig{
			DynamicLookup:      true,
			HelpTimeoutSeconds: 5,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8717",
		},
	}
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigPath is an explicit path to a config file (highest priority).
	ConfigPath string
}

// Load loads configuration from the appropriate source with the following priority:
// 1. --config flag (via LoadOptions.ConfigPath)
// 2. $SHEXPLAIN_CONFIG env var
// 3. $XDG_CONFIG_HOME/shexplain/config.toml
// 4. ~/.config/shexplain/config.toml
//
// A missing config file is not an error; defaults apply.
func Load(opts *LoadOptions) (*Config, error) {
	cfg := Default()

	configPath := findConfigPath(opts)
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigPath determines the config file path based on priority.
func findConfigPath(opts *LoadOptions) string {
	if opts != nil && opts.ConfigPath != "" {
		return opts.ConfigPath
	}

	if envPath := os.Getenv("SHEXPLAIN_CONFIG"); envPath != "" {
		return envPath
	}

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		xdgPath := filepath.Join(xdgConfigHome, "shexplain", "config.toml")
		if fileExists(xdgPath) {
			return xdgPath
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(homeDir, ".config", "shexplain", "config.toml")
		if fileExists(homePath) {
			return homePath
		}
	}

	return ""
}

// loadFromFile loads configuration from a TOML file.
func loadFromFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parse TOML: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if color := os.Getenv("SHEXPLAIN_COLOR"); color != "" {
		cfg.Color = color
	}
	if addr := os.Getenv("SHEXPLAIN_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
}

// fileExists returns true if the file at path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// GetConfigDir returns the directory where config should be stored.
// Uses $XDG_CONFIG_HOME/shexplain if set, otherwise ~/.config/shexplain.
func GetConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "shexplain"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "shexplain"), nil
}

// InitConfig creates a default configuration file at the standard location.
// Returns an error if the file already exists.
func InitConfig() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.toml")

	if fileExists(configPath) {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTOML), 0600); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("invalid color: %s (must be auto, always, or never)", c.Color)
	}

	if c.Knowledge.HelpTimeoutSeconds <= 0 {
		return fmt.Errorf("help_timeout_seconds must be positive")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}

	return nil
}
