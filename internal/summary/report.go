package summary

import (
	"fmt"
	"io"
	"strings"
)

// Header is the first line of every summary.
const Header = "Lint Warning Summary:"

// Report is a rendered-ready view of a FrequencyTable.
type Report struct {
	Entries []Entry
	Total   int
}

// TotalLine formats the closing line.
func (r Report) TotalLine() string {
	return fmt.Sprintf("Total warnings: %d", r.Total)
}

// Renderer writes reports and read failures.
type Renderer interface {
	RenderReport(w io.Writer, report Report) error
	RenderReadError(w io.Writer, readErr *ReadError) error
}

// PlainRenderer writes the unstyled report format.
type PlainRenderer struct{}

// RenderReport writes the header, one line per entry, a blank line, and the total.
func (PlainRenderer) RenderReport(w io.Writer, report Report) error {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, e := range report.Entries {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(report.TotalLine())
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderReadError writes the read failure line.
func (PlainRenderer) RenderReadError(w io.Writer, readErr *ReadError) error {
	if _, err := fmt.Fprintln(w, readErr.Message()); err != nil {
		return fmt.Errorf("write read error: %w", err)
	}
	return nil
}
