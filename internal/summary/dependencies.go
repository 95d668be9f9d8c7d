package summary

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/lint-summary/internal/debug"
)

// FileSystem provides filesystem operations.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
}

// OutputWriter writes output to various destinations.
type OutputWriter interface {
	io.Writer
}

// Dependencies holds all external dependencies.
type Dependencies struct {
	FS     FileSystem
	Stdout OutputWriter
	Logger debug.Logger
}

type realFileSystem struct{}

func (r *realFileSystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name) // #nosec G304 - path is the user's argument
	if err != nil {
		return nil, fmt.Errorf("open: %w", unwrapPathError(err))
	}
	return f, nil
}

// unwrapPathError drops the path from *os.PathError so it is not repeated
// next to the path already present in the report line.
func unwrapPathError(err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err
	}
	return err
}

// NewDefaultDependencies creates production dependencies.
func NewDefaultDependencies() *Dependencies {
	return &Dependencies{
		FS:     &realFileSystem{},
		Stdout: os.Stdout,
		Logger: debug.FromEnv(),
	}
}
