package layout

import (
	"fmt"

	"github.com/iw2rmb/cursorfit/bounded"
)

// Split is the result of breaking a line at the cursor.
type Split[T any] struct {
	// Row and Col locate the cursor after the split.
	Row int
	Col int

	First  []T
	Second []T
}

// NewlineSplit breaks line at cursor, carrying the leading run of marker
// units over to the new row.
//
// Let k be the length of the leading marker run before the cursor and l the
// length of the part of the run after it. The new row starts with
// max(k-l, 0) markers followed by line[cursor:], and the cursor lands right
// after those markers.
func NewlineSplit[T comparable](line []T, cursor int, marker T) (Split[T], error) {
	n := len(line)
	if cursor < 0 || cursor > n {
		return Split[T]{}, fmt.Errorf("%w: %d not in [0, %d]", ErrCursorOutOfRange, cursor, n)
	}

	col, err := indentColumn(line, cursor, marker)
	if err != nil {
		return Split[T]{}, err
	}

	first := make([]T, cursor)
	copy(first, line[:cursor])

	second := make([]T, 0, col+n-cursor)
	for i := 0; i < col; i++ {
		second = append(second, marker)
	}
	second = append(second, line[cursor:]...)

	return Split[T]{Row: 1, Col: col, First: first, Second: second}, nil
}

// indentColumn counts the leading marker run in bounded arithmetic: k is
// confined to [0, cursor] and the run to [0, len(line)].
func indentColumn[T comparable](line []T, cursor int, marker T) (int, error) {
	n := len(line)
	cur := bounded.MustNew(cursor, 0, n)
	k := bounded.MustNew(0, 0, cursor)
	run := bounded.MustNew(0, 0, n)

	for !run.AtUpper() && line[run.Value()] == marker {
		if err := k.AddAssign(bounded.Int(1)); err != nil {
			return 0, err
		}
		if err := run.AddAssign(bounded.Int(1)); err != nil {
			return 0, err
		}
	}

	// l is the part of the run past the cursor, i.e. the markers following
	// index k.
	l, err := run.Sub(cur)
	if err != nil {
		return 0, fmt.Errorf("trailing run: %w", err)
	}
	col, err := k.Sub(l)
	if err != nil {
		return 0, fmt.Errorf("indent column: %w", err)
	}
	return col.Value(), nil
}
