// Package cmd implements the CLI command structure for planfile.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/planfile/planfile/internal/config"
	"github.com/planfile/planfile/internal/logging"
	"github.com/planfile/planfile/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the planfile CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("planfile", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(os.Stderr, logging.Options{
		Level:           cfg.LogLevel,
		Format:          cfg.LogFormat,
		ReportTimestamp: cfg.LogTimestamps,
		Prefix:          "planfile",
	})

	// Determine the subcommand
	// If no args or first arg is a flag, use "show" as default
	subcommand := "show"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	// Execute the subcommand
	switch subcommand {
	case "show":
		return showCommand(cfg, logger, remainingArgs)
	case "fmt":
		return fmtCommand(cfg, logger, remainingArgs)
	case "tasks":
		return tasksCommand(cfg, logger, remainingArgs)
	case "diff":
		return diffCommand(cfg, remainingArgs)
	case "validate":
		return validateCommand(cfg, logger, remainingArgs)
	case "export":
		return exportCommand(cfg, logger, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// An existing file path is shorthand for "show <file>"
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			cfg.ProjectFile = subcommand
			return showCommand(cfg, logger, remainingArgs)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the document viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("planfile tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singlePathArg(fs.Args(), cfg.ProjectFile)
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, path)
}

func versionCommand() error {
	fmt.Printf("planfile %s\n", Version)
	return nil
}

// singlePathArg resolves an optional positional file argument, falling
// back to the configured project file.
func singlePathArg(args []string, fallback string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return fallback, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `planfile - project tracking in a single Markdown document

Usage:
  planfile [command] [flags] [file]

Commands:
  show       Print a summary of the project document (default)
  fmt        Rewrite the document in canonical form
  tasks      List tasks, optionally filtered or updated
  diff       Compare two project documents
  validate   Check the project model against the export schema
  export     Write the project model as JSON
  tui        Open the terminal viewer
  version    Show version
  help       Show this help

Global flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  planfile show roadmap.md
  planfile fmt roadmap.md
  planfile tasks -status in-progress roadmap.md
  planfile tasks -set "Ship v1=done" roadmap.md
  planfile diff old.md new.md
  planfile export -o roadmap.json roadmap.md
`)
}
