package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/lint-summary/internal/config"
	"github.com/Veraticus/lint-summary/internal/debug"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	lintFile := filepath.Join(dir, "lint.txt")
	content := "a.go:1: Warning: foo bar [W001]\nb.go:2: Warning: baz [W002]\nc.go:3: Warning: qux [W001]\n"
	if err := os.WriteFile(lintFile, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write lint file: %v", err)
	}
	missing := filepath.Join(dir, "missing.txt")

	strict := config.Default()
	strict.Summary.FailOnReadError = true

	tests := []struct {
		name       string
		args       []string
		cfg        *config.Config
		wantCode   int
		wantStdout string
		wantPrefix string
		wantStderr string
	}{
		{
			name:       "summarizes file",
			args:       []string{"lint-summary", lintFile},
			cfg:        config.Default(),
			wantCode:   0,
			wantStdout: "Lint Warning Summary:\n2x: W001\n1x: W002\n\nTotal warnings: 3\n",
		},
		{
			name:       "extra arguments are ignored",
			args:       []string{"lint-summary", lintFile, "ignored"},
			cfg:        config.Default(),
			wantCode:   0,
			wantStdout: "Lint Warning Summary:\n2x: W001\n1x: W002\n\nTotal warnings: 3\n",
		},
		{
			name:       "missing file keeps exit code zero by default",
			args:       []string{"lint-summary", missing},
			cfg:        config.Default(),
			wantCode:   0,
			wantPrefix: "Error reading " + missing + ": ",
		},
		{
			name:       "missing file fails when configured",
			args:       []string{"lint-summary", missing},
			cfg:        strict,
			wantCode:   1,
			wantPrefix: "Error reading " + missing + ": ",
		},
		{
			name:       "no arguments prints usage",
			args:       []string{"lint-summary"},
			cfg:        config.Default(),
			wantCode:   1,
			wantStderr: "Usage:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr, tt.cfg, debug.NopLogger{})

			if code != tt.wantCode {
				t.Errorf("Expected exit code %d, got %d", tt.wantCode, code)
			}
			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("Expected stdout %q, got %q", tt.wantStdout, stdout.String())
			}
			if tt.wantPrefix != "" {
				if !strings.HasPrefix(stdout.String(), tt.wantPrefix) {
					t.Errorf("Expected stdout to start with %q, got %q", tt.wantPrefix, stdout.String())
				}
				if strings.Count(stdout.String(), "\n") != 1 {
					t.Errorf("Expected a single line, got %q", stdout.String())
				}
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("Expected stderr to contain %q, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}
