// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultProjectFile = "project.md"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config holds the full configuration for planfile.
type Config struct {
	// Paths
	ProjectFile string `toml:"project_file"`
	SchemaFile  string `toml:"schema_file"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS config dir or ~/.planfile/planfile.toml)
// 3. Project config file (planfile.toml or .planfile.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Expand paths
	cfg.ProjectFile = expandPath(cfg.ProjectFile)
	cfg.SchemaFile = expandPath(cfg.SchemaFile)

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.ProjectFile = DefaultProjectFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
