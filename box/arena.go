package box

import (
	"errors"

	"github.com/iw2rmb/cursorfit/bounded"
)

var (
	// ErrInvalidBound is returned for malformed requests such as a negative
	// length bound. It is the same sentinel the bounded package uses.
	ErrInvalidBound = bounded.ErrInvalidBound

	// ErrOverConstrained is returned when both ends of a box are fixed and
	// their span already exceeds the requested length.
	ErrOverConstrained = errors.New("box: over-constrained")

	// ErrUnconstrainable is returned when a length is imposed on a box with
	// no fixed end to anchor against.
	ErrUnconstrainable = errors.New("box: no fixed end to anchor")

	// ErrAbsurd marks a result derived from an absurd box. The algebra itself
	// returns absurd boxes as values; callers that must not use them convert
	// them to this error.
	ErrAbsurd = errors.New("box: absurd")
)

// Arena owns the boxes referenced by Points. It is not safe for concurrent
// use; build one per computation.
type Arena struct {
	slots []Box
}

func NewArena() *Arena {
	return &Arena{slots: make([]Box, 0, 16)}
}

// Len returns the number of allocated slots.
func (a *Arena) Len() int { return len(a.slots) }

func (a *Arena) alloc(b Box) int {
	b.arena = a
	a.slots = append(a.slots, b)
	return len(a.slots) - 1
}

// Fixed returns a point pinned at v.
func (a *Arena) Fixed(v int) Point {
	return Point{arena: a, slot: a.alloc(Box{kind: KindFixed, at: v}), value: v}
}

// Floating returns a point at v whose box is universal.
func (a *Arena) Floating(v int) Point {
	return Point{arena: a, slot: a.alloc(Box{kind: KindUniversal}), value: v}
}

// Universal returns the unbounded box.
func (a *Arena) Universal() Box {
	return Box{kind: KindUniversal, arena: a}
}

// Absurd returns the empty box.
func (a *Arena) Absurd() Box {
	return Box{kind: KindAbsurd, arena: a}
}

// Box returns [l, r). Raw integers (At) become fixed points.
//
// The result is absurd when either end is absurd, or when both ends are fixed
// and l > r. Otherwise the box is generic, even if a bounded end currently
// sits past the other: construction normalizes nothing.
func (a *Arena) Box(l, r End) Box {
	return newBox(l.point(a), r.point(a))
}

func newBox(l, r Point) Box {
	a := l.arena
	if a == nil {
		a = r.arena
	}
	if l.IsAbsurd() || r.IsAbsurd() {
		return Box{kind: KindAbsurd, arena: a}
	}
	if l.IsFixed() && r.IsFixed() && l.Value() > r.Value() {
		return Box{kind: KindAbsurd, arena: a}
	}
	return Box{kind: KindGeneric, arena: a, left: l, right: r}
}

// End is one end of a box under construction: a Point or an At.
type End interface {
	point(a *Arena) Point
}

// At is a raw integer end. It is promoted to a fixed point.
type At int

func (v At) point(a *Arena) Point {
	if a == nil {
		a = NewArena()
	}
	return a.Fixed(int(v))
}

func (p Point) point(a *Arena) Point {
	if p.arena == nil && a != nil {
		return a.Floating(p.value)
	}
	return p
}
