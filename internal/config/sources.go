package config

import (
	"os"
	"path/filepath"
	"strings"
)

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{"planfile.toml", ".planfile.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file in the OS config
// directory, falling back to ~/.planfile/planfile.toml.
func findUserConfigFile() string {
	if cfgDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(cfgDir, "planfile", "planfile.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".planfile", "planfile.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// expandPath expands a ~/ prefix and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}
