package config

import "flag"

// parseFlags defines and parses global CLI flags onto the config.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("planfile", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.ProjectFile, "project", cfg.ProjectFile, "Path to project document")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to export schema file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	return fs.Parse(args)
}
