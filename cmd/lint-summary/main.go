// Package main implements the lint-summary CLI application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/lint-summary/internal/config"
	"github.com/Veraticus/lint-summary/internal/debug"
	"github.com/Veraticus/lint-summary/internal/output"
	"github.com/Veraticus/lint-summary/internal/summary"
)

func main() {
	logger := debug.FromEnv()
	cfg := loadConfig(logger)
	os.Exit(run(os.Args, os.Stdout, os.Stderr, cfg, logger))
}

// run summarizes args[1] and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, cfg *config.Config, logger debug.Logger) int {
	if len(args) < 2 {
		printUsage(stderr)
		return 1
	}

	deps := summary.NewDefaultDependencies()
	deps.Stdout = stdout
	deps.Logger = logger

	renderer := output.NewReportRenderer(stdout, output.ColorProfile(stdout, cfg.Summary.ColorMode()))
	err := summary.NewSummarizer(renderer, deps).Summarize(args[1])

	var readErr *summary.ReadError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &readErr):
		if cfg.Summary.FailOnReadError {
			return 1
		}
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func loadConfig(logger debug.Logger) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Printf("using default config: %v", err)
		return config.Default()
	}
	return cfg
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, `lint-summary - Summarize lint warnings by identifier

Usage:
  lint-summary <filepath>

Counts every "Warning: ... [Id]" in the file and prints the identifiers
by descending frequency followed by the total.

Configuration:
  config.{toml,yaml} in /etc/lint-summary, ~/.config/lint-summary or the
  current directory; LINT_SUMMARY_* environment variables override it.
  Set %s=1 for debug logging on stderr.
`, debug.EnvVar)
}
