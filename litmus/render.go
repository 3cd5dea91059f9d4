package litmus

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style controls how Render draws a report.
type Style struct {
	Title lipgloss.Style
	Rule  lipgloss.Style
	Text  lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style

	// Cursor and PrettyCursor: every Cursor in drawn text is shown as
	// PrettyCursor.
	Cursor       string
	PrettyCursor string
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default style on r.
func NewStyle(r *lipgloss.Renderer) Style {
	rule := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Title:        r.NewStyle().Bold(true),
		Rule:         rule,
		Text:         r.NewStyle(),
		Pass:         r.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:         r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Cursor:       "|",
		PrettyCursor: "│",
	}
}

// Render draws every case of rep with before/after panes, followed by a
// final summary line.
func Render(rep Report, st Style) string {
	var sb strings.Builder
	for _, res := range rep.Results {
		renderResult(&sb, res, st)
	}

	if fails := rep.Failures(); len(fails) > 0 {
		sb.WriteString(st.Fail.Render(fmt.Sprintf("%s: failures %v", rep.Suite, fails)))
	} else {
		sb.WriteString(st.Pass.Render(fmt.Sprintf("%s: all %d succeeded", rep.Suite, len(rep.Results))))
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderResult(sb *strings.Builder, res Result, st Style) {
	sb.WriteString(st.Title.Render(fmt.Sprintf("test %d:", res.Index)) + "\n")
	sb.WriteString(st.Rule.Render(pane("before")) + "\n")
	st.writeText(sb, res.Input)
	sb.WriteString(st.Rule.Render(pane("after")) + "\n")
	if res.Err != nil {
		sb.WriteString(st.Fail.Render("error: "+res.Err.Error()) + "\n")
	} else {
		st.writeText(sb, res.Got)
	}

	status := st.Pass.Render("[:)]")
	if !res.Pass {
		status = st.Fail.Render("[:(]")
	}
	sb.WriteString(st.Rule.Render("────") + status + st.Rule.Render("────") + "\n")

	if !res.Pass && res.Expected != "" {
		sb.WriteString(st.Rule.Render(pane("expected")) + "\n")
		st.writeText(sb, res.Expected)
	}
	sb.WriteString("\n")
}

// writeText renders text line by line so lipgloss does not pad rows to a
// common width.
func (st Style) writeText(sb *strings.Builder, text string) {
	if st.Cursor != "" && st.PrettyCursor != "" {
		text = strings.ReplaceAll(text, st.Cursor, st.PrettyCursor)
	}
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(st.Text.Render(line))
		sb.WriteString("\n")
	}
}

func pane(name string) string {
	return "─────[" + name + "]─────"
}
