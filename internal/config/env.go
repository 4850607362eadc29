package config

import "os"

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("PLANFILE_PROJECT"); v != "" {
		cfg.ProjectFile = v
	}
	if v := os.Getenv("PLANFILE_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("PLANFILE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLANFILE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("PLANFILE_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

func boolFromString(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	default:
		return false
	}
}
