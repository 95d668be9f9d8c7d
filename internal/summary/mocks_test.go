package summary

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var errMockNoOpenFunc = errors.New("mock: no open function configured")

// mockFileSystem implements FileSystem for testing.
type mockFileSystem struct {
	openFunc func(name string) (io.ReadCloser, error)
	opened   []string
}

func (m *mockFileSystem) Open(name string) (io.ReadCloser, error) {
	m.opened = append(m.opened, name)
	if m.openFunc != nil {
		return m.openFunc(name)
	}
	return nil, errMockNoOpenFunc
}

// trackingReadCloser records whether Close was called.
type trackingReadCloser struct {
	io.Reader
	closed bool
}

func (t *trackingReadCloser) Close() error {
	t.closed = true
	return nil
}

func newTrackingReader(content string) *trackingReadCloser {
	return &trackingReadCloser{Reader: strings.NewReader(content)}
}

// failingReader returns err after yielding nothing.
type failingReader struct {
	err error
}

func (f failingReader) Read([]byte) (int, error) {
	return 0, f.err
}

// mockLogger records formatted log lines.
type mockLogger struct {
	mu    sync.Mutex
	lines []string
}

func (m *mockLogger) Printf(format string, v ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, fmt.Sprintf(format, v...))
}

func (m *mockLogger) contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
