package litmus

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/cursorfit/internal/clamp"
	"github.com/iw2rmb/cursorfit/internal/grapheme"
	"github.com/iw2rmb/cursorfit/layout"
)

// ParseCursor splits litmus into grapheme units, removes the first cursor
// unit and returns the remaining units with the cursor position.
func ParseCursor(litmus, cursor string) ([]string, int, error) {
	units := grapheme.Split(litmus)
	at := grapheme.Index(units, cursor)
	if at < 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrNoCursor, litmus)
	}
	return grapheme.Remove(units, at), at, nil
}

// DrawEnter splits units at cursor as if ENTER was pressed and returns both
// rows joined by a newline, with the cursor drawn where it lands.
func DrawEnter(units []string, cursor int, opt Options) (string, error) {
	opt = opt.withDefaults()
	s, err := layout.NewlineSplit(units, cursor, opt.Marker)
	if err != nil {
		return "", err
	}

	rows := [][]string{s.First, s.Second}
	rows[s.Row] = grapheme.Insert(rows[s.Row], s.Col, opt.Cursor)
	return grapheme.Join(rows[0]) + "\n" + grapheme.Join(rows[1]), nil
}

// DrawOverflow returns the visible part of units with the cursor drawn in,
// framed by ellipsis units on the hidden sides.
func DrawOverflow(units []string, cursor int, opt Options) (string, error) {
	opt = opt.withDefaults()
	w, err := layout.TruncationWindow(units, cursor, opt.truncate())
	if err != nil {
		return "", err
	}

	text := clamp.Span{L: w.TextStart, R: w.TextEnd}.Clamp(0, len(units))
	visible := units[text.L:text.R]
	at := clamp.Span{L: text.L, R: clamp.Int(cursor, text.L, text.R)}.Regauge().R

	var sb strings.Builder
	sb.WriteString(grapheme.Join(grapheme.Repeat(opt.Ellipsis, w.LeftEllipsis)))
	sb.WriteString(grapheme.Join(grapheme.Insert(visible, at, opt.Cursor)))
	sb.WriteString(grapheme.Join(grapheme.Repeat(opt.Ellipsis, w.RightEllipsis)))
	return sb.String(), nil
}

// Draw parses input and draws it with the operation kind selects.
func Draw(kind Kind, input string, opt Options) (string, error) {
	opt = opt.withDefaults()
	units, cursor, err := ParseCursor(input, opt.Cursor)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindEnter:
		return DrawEnter(units, cursor, opt)
	case KindOverflow:
		return DrawOverflow(units, cursor, opt)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
