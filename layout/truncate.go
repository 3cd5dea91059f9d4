package layout

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/cursorfit/box"
)

// ErrCursorOutOfRange is returned when the cursor is outside [0, len(line)].
var ErrCursorOutOfRange = errors.New("layout: cursor out of range")

// TruncateOptions configures TruncationWindow.
type TruncateOptions struct {
	// ViewportWidth is the number of units the viewport can show. Lines no
	// longer than this are never truncated.
	ViewportWidth int

	// Margin is how many units stay visible on each side of the cursor. It is
	// capped at ViewportWidth/2.
	Margin int

	// EllipsisMax caps the ellipsis drawn on each side.
	EllipsisMax int
}

// Window describes how to draw a truncated line: LeftEllipsis markers, then
// line[TextStart:TextEnd], then RightEllipsis markers.
type Window struct {
	TextStart int
	TextEnd   int

	LeftEllipsis  int
	RightEllipsis int
}

// Width is the number of cells the drawn window occupies.
func (w Window) Width() int {
	return w.LeftEllipsis + (w.TextEnd - w.TextStart) + w.RightEllipsis
}

// Truncated reports whether any part of the line is hidden.
func (w Window) Truncated() bool {
	return w.LeftEllipsis > 0 || w.RightEllipsis > 0
}

// TruncationWindow returns the window to draw for line with the cursor at
// cursor.
//
// The visible text spans Margin units either side of the cursor, clamped to
// the line. Each hidden side gets an ellipsis box abutting the text: its end
// at the text is fixed and its far end floats, and the box is bounded to
// EllipsisMax.
func TruncationWindow[T any](line []T, cursor int, opt TruncateOptions) (Window, error) {
	return truncationWindow(len(line), cursor, opt)
}

func truncationWindow(n, cursor int, opt TruncateOptions) (Window, error) {
	if cursor < 0 || cursor > n {
		return Window{}, fmt.Errorf("%w: %d not in [0, %d]", ErrCursorOutOfRange, cursor, n)
	}
	if opt.ViewportWidth < 0 || opt.Margin < 0 || opt.EllipsisMax < 0 {
		return Window{}, fmt.Errorf("%w: viewport %d, margin %d, ellipsis %d",
			box.ErrInvalidBound, opt.ViewportWidth, opt.Margin, opt.EllipsisMax)
	}
	if n <= opt.ViewportWidth {
		return Window{TextStart: 0, TextEnd: n}, nil
	}

	margin := min(opt.Margin, opt.ViewportWidth/2)

	a := box.NewArena()
	outer := a.Box(box.At(0), box.At(n))
	cur := outer.Point(cursor)
	textL := cur.Left(margin)
	textR := cur.Right(margin)

	left, err := outer.SubBox(a.Floating(0), textL.Fix()).BoundedTo(opt.EllipsisMax)
	if err != nil {
		return Window{}, fmt.Errorf("left ellipsis: %w", err)
	}
	right, err := outer.SubBox(textR.Fix(), a.Floating(n)).BoundedTo(opt.EllipsisMax)
	if err != nil {
		return Window{}, fmt.Errorf("right ellipsis: %w", err)
	}
	if left.IsAbsurd() || right.IsAbsurd() {
		return Window{}, fmt.Errorf("%w: ellipsis %v / %v", box.ErrAbsurd, left, right)
	}

	return Window{
		TextStart:     textL.Value(),
		TextEnd:       textR.Value(),
		LeftEllipsis:  left.Len(),
		RightEllipsis: right.Len(),
	}, nil
}
