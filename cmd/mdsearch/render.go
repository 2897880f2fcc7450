package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Renderer styles terminal output. A nil Renderer leaves text unstyled.
type Renderer struct {
	highlight lipgloss.Style
	title     lipgloss.Style
	dim       lipgloss.Style
	warn      lipgloss.Style
}

// NewRenderer returns a Renderer whose color support is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		dim:       r.NewStyle().Foreground(lipgloss.Color("241")),
		warn:      r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Highlight marks a keyword occurrence.
func (r *Renderer) Highlight(s string) string {
	if r == nil {
		return s
	}
	return r.highlight.Render(s)
}

// Title styles a document title.
func (r *Renderer) Title(s string) string {
	if r == nil {
		return s
	}
	return r.title.Render(s)
}

// Dim styles secondary text such as paths.
func (r *Renderer) Dim(s string) string {
	if r == nil {
		return s
	}
	return r.dim.Render(s)
}

// Warn styles a warning.
func (r *Renderer) Warn(s string) string {
	if r == nil {
		return s
	}
	return r.warn.Render(s)
}

// TruncateMiddle shortens s to at most width cells by replacing its middle
// with an ellipsis. Paths keep their most telling parts at both ends.
func TruncateMiddle(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	runes := []rune(s)
	keep := width - 3
	head := keep / 2
	tail := keep - head
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
