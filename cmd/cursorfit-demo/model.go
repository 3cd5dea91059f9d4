package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cursorfit/internal/clamp"
	"github.com/iw2rmb/cursorfit/internal/config"
	"github.com/iw2rmb/cursorfit/internal/debuglog"
	"github.com/iw2rmb/cursorfit/internal/grapheme"
	"github.com/iw2rmb/cursorfit/layout"
)

const gutterWidth = 4

type model struct {
	rows     [][]string
	row, col int

	opt      layout.TruncateOptions
	marker   string
	ellipsis string

	keys  KeyMap
	style Style
	err   error
}

func newModel(cfg *config.Config, text string, style Style) model {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, grapheme.Split(line))
	}
	return model{
		rows:     rows,
		opt:      cfg.TruncateOptions(),
		marker:   cfg.Layout.Marker,
		ellipsis: cfg.Layout.Ellipsis,
		keys:     DefaultKeyMap(),
		style:    style,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	return m, nil
}

// resize fits the viewport to the terminal: the gutter, both ellipses and a
// trailing cursor cell come off the width, and the margin centers the cursor.
func (m *model) resize(width int) {
	v := clamp.Zero(width - gutterWidth - 2*m.opt.EllipsisMax - 1)
	m.opt.ViewportWidth = v
	m.opt.Margin = v / 2
	debuglog.Debugf("resize: width %d viewport %d", width, v)
}

func (m *model) handleKey(msg tea.KeyMsg) {
	m.err = nil
	line := m.rows[m.row]

	switch {
	case key.Matches(msg, m.keys.Left):
		m.col = clamp.Lower(m.col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.col = clamp.Upper(m.col+1, len(line))
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Home):
		m.col = 0
	case key.Matches(msg, m.keys.End):
		m.col = len(line)
	case key.Matches(msg, m.keys.Backspace):
		m.backspace()
	case key.Matches(msg, m.keys.Enter):
		m.enter()
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, c := range grapheme.Split(string(msg.Runes)) {
			m.rows[m.row] = grapheme.Insert(m.rows[m.row], m.col, c)
			m.col++
		}
	}
}

func (m *model) moveRow(d int) {
	m.row = clamp.Int(m.row+d, 0, len(m.rows)-1)
	m.col = clamp.ZeroUpper(m.col, len(m.rows[m.row]))
}

func (m *model) backspace() {
	if m.col > 0 {
		m.rows[m.row] = grapheme.Remove(m.rows[m.row], m.col-1)
		m.col--
		return
	}
	if m.row == 0 {
		return
	}
	prev := m.rows[m.row-1]
	joined := append(append([]string{}, prev...), m.rows[m.row]...)
	m.rows = append(m.rows[:m.row-1], append([][]string{joined}, m.rows[m.row+1:]...)...)
	m.row--
	m.col = len(prev)
}

// enter splits the cursor row and carries its indentation over.
func (m *model) enter() {
	s, err := layout.NewlineSplit(m.rows[m.row], m.col, m.marker)
	if err != nil {
		m.err = err
		debuglog.Errorf("enter at %d:%d: %v", m.row, m.col, err)
		return
	}

	rows := make([][]string, 0, len(m.rows)+1)
	rows = append(rows, m.rows[:m.row]...)
	rows = append(rows, s.First, s.Second)
	rows = append(rows, m.rows[m.row+1:]...)
	m.rows = rows
	m.row += s.Row
	m.col = s.Col
}

func (m model) View() string {
	var sb strings.Builder
	for i, units := range m.rows {
		num := m.style.LineNum
		if i == m.row {
			num = m.style.LineNumActive
		}
		sb.WriteString(num.Render(fmt.Sprintf("%*d ", gutterWidth-1, i+1)))

		cursor := clamp.ZeroUpper(m.col, len(units))
		sb.WriteString(m.renderRow(units, cursor, i == m.row))
		sb.WriteString("\n")
	}
	sb.WriteString(m.status())
	return sb.String()
}

// renderRow draws units scrolled around cursor. Rows without the cursor
// scroll with the cursor column so the columns stay aligned.
func (m model) renderRow(units []string, cursor int, active bool) string {
	w, err := layout.TruncationWindow(units, cursor, m.opt)
	if err != nil {
		return m.style.Error.Render(err.Error())
	}
	text := clamp.Span{L: w.TextStart, R: w.TextEnd}.Clamp(0, len(units))

	var sb strings.Builder
	sb.WriteString(m.style.Ellipsis.Render(grapheme.Join(grapheme.Repeat(m.ellipsis, w.LeftEllipsis))))
	for i := text.L; i < text.R; i++ {
		if active && i == cursor {
			sb.WriteString(m.style.Cursor.Render(units[i]))
			continue
		}
		sb.WriteString(m.style.Text.Render(units[i]))
	}
	if active && cursor == text.R {
		sb.WriteString(m.style.Cursor.Render(" "))
	}
	sb.WriteString(m.style.Ellipsis.Render(grapheme.Join(grapheme.Repeat(m.ellipsis, w.RightEllipsis))))
	return sb.String()
}

func (m model) status() string {
	if m.err != nil {
		return m.style.Error.Render(m.err.Error())
	}
	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	return m.style.Status.Render(fmt.Sprintf("%d:%d  viewport %d  cells %d  %s",
		m.row+1, m.col, m.opt.ViewportWidth, grapheme.Cells(m.rows[m.row]), strings.Join(help, " · ")))
}
