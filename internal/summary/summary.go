// Package summary tallies lint warnings by identifier and prints a frequency report.
package summary

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Summarizer reads a lint output file and reports warning counts.
type Summarizer struct {
	renderer Renderer
	deps     *Dependencies
}

// NewSummarizer creates a summarizer. A nil renderer means plain output, and
// nil dependencies (or nil fields) fall back to production ones.
func NewSummarizer(renderer Renderer, deps *Dependencies) *Summarizer {
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	return &Summarizer{renderer: renderer, deps: withDefaults(deps)}
}

// Summarize prints the warning summary for path. A file that cannot be read
// is reported on stdout and returned as a *ReadError; any other error means
// the output could not be written.
func (s *Summarizer) Summarize(path string) error {
	text, err := s.read(path)
	if err != nil {
		readErr := &ReadError{Path: path, Err: err}
		s.logf("read failed: %v", readErr)
		if renderErr := s.renderer.RenderReadError(s.deps.Stdout, readErr); renderErr != nil {
			return renderErr
		}
		return readErr
	}

	table := Tally(Scan(text))
	s.logf("%s: %d warnings, %d distinct", path, table.Total(), table.Len())

	return s.renderer.RenderReport(s.deps.Stdout, table.Report())
}

func withDefaults(deps *Dependencies) *Dependencies {
	defaults := NewDefaultDependencies()
	if deps == nil {
		return defaults
	}
	filled := *deps
	if filled.FS == nil {
		filled.FS = defaults.FS
	}
	if filled.Stdout == nil {
		filled.Stdout = defaults.Stdout
	}
	if filled.Logger == nil {
		filled.Logger = defaults.Logger
	}
	return &filled
}

func (s *Summarizer) read(path string) (string, error) {
	f, err := s.deps.FS.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return "", fmt.Errorf("decode utf-8: %w", err)
	}
	if err != nil {
		return "", fmt.Errorf("read: %w", unwrapPathError(err))
	}
	return string(data), nil
}

func (s *Summarizer) logf(format string, v ...any) {
	s.deps.Logger.Printf(format, v...)
}

// Summarize prints the summary for path to stdout with production dependencies.
func Summarize(path string) error {
	return NewSummarizer(nil, nil).Summarize(path)
}
