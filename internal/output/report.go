// Package output renders lint summaries for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Veraticus/lint-summary/internal/config"
	"github.com/Veraticus/lint-summary/internal/shared"
	"github.com/Veraticus/lint-summary/internal/summary"
)

// ReportRenderer writes summaries, colouring them when the profile allows.
type ReportRenderer struct {
	styles shared.Styles
	styled bool
}

// NewReportRenderer creates a renderer for the given colour profile.
// termenv.Ascii produces the plain report format byte for byte.
func NewReportRenderer(out io.Writer, profile termenv.Profile) *ReportRenderer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return &ReportRenderer{
		styles: shared.NewStyles(r),
		styled: profile != termenv.Ascii,
	}
}

// ColorProfile resolves a colour mode against the destination writer.
// In auto mode only terminals get colour, and NO_COLOR/CLICOLOR are honoured.
func ColorProfile(out io.Writer, mode string) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.TrueColor
	case config.ColorNever:
		return termenv.Ascii
	}

	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func (r *ReportRenderer) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// RenderReport writes the header, one line per entry, a blank line, and the total.
func (r *ReportRenderer) RenderReport(w io.Writer, report summary.Report) error {
	var sb strings.Builder

	sb.WriteString(r.render(r.styles.Title, summary.Header))
	sb.WriteString("\n")

	for _, e := range report.Entries {
		sb.WriteString(r.render(r.styles.Count, fmt.Sprintf("%dx", e.Count)))
		sb.WriteString(": ")
		sb.WriteString(r.render(r.styles.Item, string(e.ID)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(r.render(r.styles.Total, report.TotalLine()))
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderReadError writes the read failure line. Only the prefix is styled;
// the path and cause are written verbatim.
func (r *ReportRenderer) RenderReadError(w io.Writer, readErr *summary.ReadError) error {
	line := readErr.Message()
	if r.styled {
		line = r.styles.Error.Render(summary.ReadErrorPrefix) + strings.TrimPrefix(line, summary.ReadErrorPrefix)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write read error: %w", err)
	}
	return nil
}
