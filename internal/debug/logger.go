// Package debug provides opt-in diagnostic logging for lint-summary.
package debug

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// EnvVar enables debug logging when set to "1".
const EnvVar = "LINT_SUMMARY_DEBUG"

// Logger is the logging surface used across lint-summary.
type Logger interface {
	Printf(format string, v ...any)
}

// Enabled reports whether debug logging was requested through the environment.
func Enabled() bool {
	return os.Getenv(EnvVar) == "1"
}

// StandardLogger writes debug lines through charmbracelet/log.
type StandardLogger struct {
	l *log.Logger
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer) *StandardLogger {
	return &StandardLogger{
		l: log.NewWithOptions(w, log.Options{
			Prefix:          "lint-summary",
			Level:           log.DebugLevel,
			ReportTimestamp: true,
		}),
	}
}

// Printf logs a formatted debug line.
func (s *StandardLogger) Printf(format string, v ...any) {
	s.l.Debugf(format, v...)
}

// NopLogger discards everything.
type NopLogger struct{}

// Printf does nothing.
func (NopLogger) Printf(string, ...any) {}

// FromEnv returns a stderr logger when debug logging is enabled, otherwise a NopLogger.
// Stdout is reserved for the report.
func FromEnv() Logger {
	if Enabled() {
		return NewLogger(os.Stderr)
	}
	return NopLogger{}
}
