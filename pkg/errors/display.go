package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dolang/pkg/source"
)

var (
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	markerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// DisplayErrors prints errs to w, each followed by the offending source line
// and a caret under the reported column. With color set, the headline and
// marker are styled for a terminal.
func DisplayErrors(w io.Writer, sf *source.SourceFile, errs []DoError, color bool) {
	render := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	for _, err := range errs {
		pos := err.Pos()
		headline := fmt.Sprintf("%s Error: %s", err.Kind(), err.Error())
		where := ""
		if sf != nil {
			where = render(pathStyle, fmt.Sprintf("%s:%s", sf.DisplayPath(), pos)) + ": "
		}
		fmt.Fprintf(w, "%s%s\n", where, render(headlineStyle, headline))

		if sf == nil || !pos.IsValid() {
			continue
		}
		line := sf.Line(pos.Line)
		if line == "" {
			continue
		}
		fmt.Fprintf(w, "  %s\n", strings.TrimRight(line, "\t "))
		fmt.Fprintf(w, "  %s%s\n", caretPadding(line, pos.Column), render(markerStyle, "^"))
	}
}

// caretPadding keeps tabs from the source line so the caret lines up with
// the reported rune column.
func caretPadding(line string, column int) string {
	var b strings.Builder
	n := 1
	for _, r := range line {
		if n >= column {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n++
	}
	return b.String()
}
