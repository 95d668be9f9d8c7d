// Package main implements lint-summary-watch, which reprints the summary
// whenever the lint output file changes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/lint-summary/internal/config"
	"github.com/Veraticus/lint-summary/internal/debug"
	"github.com/Veraticus/lint-summary/internal/output"
	"github.com/Veraticus/lint-summary/internal/summary"
	"github.com/Veraticus/lint-summary/internal/watch"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	logger := debug.FromEnv()
	cfg, err := config.Load()
	if err != nil {
		logger.Printf("using default config: %v", err)
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Stdout, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run prints the summary once and again after every change until ctx is done.
func run(ctx context.Context, path string, stdout io.Writer, cfg *config.Config, logger debug.Logger) error {
	deps := summary.NewDefaultDependencies()
	deps.Stdout = stdout
	deps.Logger = logger

	renderer := output.NewReportRenderer(stdout, output.ColorProfile(stdout, cfg.Summary.ColorMode()))
	summarizer := summary.NewSummarizer(renderer, deps)

	summarize := func() error {
		err := summarizer.Summarize(path)
		var readErr *summary.ReadError
		if errors.As(err, &readErr) {
			// The file may reappear; keep watching.
			return nil
		}
		return err
	}

	if err := summarize(); err != nil {
		return err
	}

	w, err := watch.New(path, cfg.Watch.Debounce(), logger)
	if err != nil {
		return err
	}
	logger.Printf("watching %s", w.Path())

	var runErr error
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err = w.Run(ctx, func() {
		_, _ = fmt.Fprintln(stdout)
		if err := summarize(); err != nil {
			runErr = err
			cancel()
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return runErr
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `lint-summary-watch - Reprint the lint summary whenever the file changes

Usage:
  lint-summary-watch <filepath>

Stop with Ctrl-C. The debounce interval is read from watch.debounce_ms.
`)
}
