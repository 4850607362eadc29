// Package logging builds the console logger used by the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           string // debug, info, warn, error
	Format          string // text, json, logfmt
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Format: "text",
		Prefix: "planfile",
	}
}

// New creates a leveled console logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(opts.Level),
		Formatter:       parseFormat(opts.Format),
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// parseLevel maps a level name to a log level. Unknown names fall back
// to info.
func parseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// parseFormat maps a format name to a formatter. Unknown names fall
// back to text.
func parseFormat(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
