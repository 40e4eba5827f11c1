package config

import (
	"fmt"

	"github.com/iksnae/ftl/internal"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable, e.g. FTL_FIREFOX_DIR
const EnvPrefix = "FTL"

// Config holds defaults for the command-line flags
type Config struct {
	// FirefoxDir is searched for profile directories. Empty means the OS default.
	FirefoxDir string `envconfig:"FIREFOX_DIR"`
	// SessionPattern selects profile directories inside FirefoxDir
	SessionPattern string `envconfig:"SESSION_PATTERN" default:"*.default*"`
	// Format is the output format (json, yaml, jsonl, md)
	Format string `envconfig:"FORMAT" default:"json"`
	// Target is the output path; "-" writes to standard output
	Target string `envconfig:"TARGET" default:"-"`
}

// Load loads configuration from FTL_* environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.FirefoxDir == "" {
		dir, err := internal.DefaultFirefoxDir()
		if err != nil {
			internal.LogDebug("No default Firefox directory: %v", err)
		} else {
			cfg.FirefoxDir = dir
		}
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns defaults
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		internal.LogWarn("Ignoring environment configuration: %v", err)
		return Default()
	}
	return cfg
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{
		SessionPattern: internal.DefaultSessionDirPattern,
		Format:         "json",
		Target:         "-",
	}
	if dir, err := internal.DefaultFirefoxDir(); err == nil {
		cfg.FirefoxDir = dir
	}
	return cfg
}
