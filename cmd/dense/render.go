package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/born-ml/dense/dense"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	matrixStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderView writes a header line and the view's elements to w.
// Styling is applied only when w is a terminal.
func renderView(w io.Writer, title string, v *dense.View[float64]) error {
	header := title + ": " + v.String()
	body := strings.TrimSuffix(dense.Format[float64](v), "\n")

	var note string
	if v.Materialized() {
		note = "copied: the source is not contiguous and cannot be walked in this order with a single stride"
	}

	if isTerminal(w) {
		header = headerStyle.Render(header)
		body = matrixStyle.Render(body)
		if note != "" {
			note = noteStyle.Render(note)
		}
	}

	lines := []string{header}
	if body != "" {
		lines = append(lines, body)
	}
	if note != "" {
		lines = append(lines, note)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
