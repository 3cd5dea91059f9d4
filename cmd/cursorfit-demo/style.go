package main

import "github.com/charmbracelet/lipgloss"

// Style controls how the demo draws rows.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text     lipgloss.Style
	Cursor   lipgloss.Style
	Ellipsis lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default style on r.
func NewStyle(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          r.NewStyle(),
		Cursor:        r.NewStyle().Reverse(true),
		Ellipsis:      r.NewStyle().Foreground(lipgloss.Color("244")),
		Status:        r.NewStyle().Foreground(lipgloss.Color("240")),
		Error:         r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
