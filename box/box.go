package box

import (
	"fmt"
	"iter"
	"math"

	"github.com/iw2rmb/cursorfit/internal/clamp"
)

type Kind uint8

const (
	KindUniversal Kind = iota // (-inf, +inf)
	KindGeneric               // [left, right) with Point ends
	KindFixed                 // singleton [v, v+1)
	KindAbsurd                // empty
)

func (k Kind) String() string {
	switch k {
	case KindUniversal:
		return "universal"
	case KindGeneric:
		return "generic"
	case KindFixed:
		return "fixed"
	case KindAbsurd:
		return "absurd"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Box is a half-open interval [left, right).
//
// The zero Box is universal.
type Box struct {
	kind  Kind
	arena *Arena

	left  Point
	right Point

	at int // KindFixed only
}

func (b Box) Kind() Kind { return b.kind }
func (b Box) IsAbsurd() bool { return b.kind == KindAbsurd }
func (b Box) IsFixed() bool { return b.kind == KindFixed }
func (b Box) IsUniversal() bool { return b.kind == KindUniversal }

// Left and Right return the ends of a generic box. Other kinds have no
// endpoint Points and return the zero Point.
func (b Box) Left() Point { return b.left }
func (b Box) Right() Point { return b.right }

// Bounds returns the closed bounds a value is clamped into. ok is false for
// absurd boxes.
func (b Box) Bounds() (lo, hi int, ok bool) {
	switch b.kind {
	case KindUniversal:
		return math.MinInt, math.MaxInt, true
	case KindGeneric:
		return b.left.Value(), b.right.Value(), true
	case KindFixed:
		return b.at, b.at, true
	case KindAbsurd:
		return 0, 0, false
	}
	return 0, 0, false
}

// Clamp saturates v into [left, right]. Universal and absurd boxes return v.
func (b Box) Clamp(v int) int {
	switch b.kind {
	case KindGeneric:
		r := newResolver()
		return clamp.Int(v, r.value(b.left), r.value(b.right))
	case KindFixed:
		return b.at
	case KindUniversal, KindAbsurd:
		return v
	}
	return v
}

func (b Box) contains(v int) bool {
	lo, hi, ok := b.Bounds()
	return ok && lo <= v && v <= hi
}

// Point returns a point at Clamp(v) whose box is a deep copy of b.
func (b Box) Point(v int) Point {
	a := b.arenaOrNew()
	return Point{arena: a, slot: a.alloc(newCopier(a).box(b)), value: b.Clamp(v)}
}

// SubBox returns Intersect(b, [l, r)): a child box is never larger than its
// parent. Where the child's end ties with the parent's, the child's end is
// kept, so a floating end requested at the parent's edge stays floating.
func (b Box) SubBox(l, r End) Box {
	return Intersect(b, b.arenaOrNew().Box(l, r))
}

// Range yields left, left+1, ..., right-1. Fixed boxes yield their single
// value. Universal and absurd boxes yield nothing.
func (b Box) Range() iter.Seq[int] {
	lo, hi := b.rangeBounds()
	return func(yield func(int) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Len is the number of values Range yields.
func (b Box) Len() int {
	lo, hi := b.rangeBounds()
	return clamp.Zero(hi - lo)
}

func (b Box) rangeBounds() (lo, hi int) {
	switch b.kind {
	case KindGeneric:
		return b.left.Value(), b.right.Value()
	case KindFixed:
		return b.at, b.at + 1
	case KindUniversal, KindAbsurd:
		return 0, 0
	}
	return 0, 0
}

// BoundedTo limits the box to at most maxlen values, anchored on its fixed
// end. The fixed end never moves; the other end is copied and narrowed to
// within maxlen of the anchor.
//
// Both ends fixed with a wider span fails with ErrOverConstrained; no fixed
// end fails with ErrUnconstrainable. Absurd boxes are returned unchanged.
func (b Box) BoundedTo(maxlen int) (Box, error) {
	if maxlen < 0 {
		return b, fmt.Errorf("%w: negative length %d", ErrInvalidBound, maxlen)
	}

	switch b.kind {
	case KindAbsurd:
		return b, nil
	case KindUniversal:
		return b, fmt.Errorf("%w: %v", ErrUnconstrainable, b)
	case KindFixed:
		if maxlen < 1 {
			return b, fmt.Errorf("%w: %v exceeds length %d", ErrOverConstrained, b, maxlen)
		}
		return b, nil
	case KindGeneric:
	}

	lf, rf := b.left.IsFixed(), b.right.IsFixed()
	switch {
	case lf && rf:
		if b.right.Value()-b.left.Value() > maxlen {
			return b, fmt.Errorf("%w: %v exceeds length %d", ErrOverConstrained, b, maxlen)
		}
		return b, nil
	case lf:
		anchor := b.left.Value()
		r := b.right.Copy()
		r.AddBox(b.arena.Box(At(anchor), At(clamp.Add(anchor, maxlen))))
		return newBox(b.left, r), nil
	case rf:
		anchor := b.right.Value()
		l := b.left.Copy()
		l.AddBox(b.arena.Box(At(clamp.Sub(anchor, maxlen)), At(anchor)))
		return newBox(l, b.right), nil
	default:
		return b, fmt.Errorf("%w: %v", ErrUnconstrainable, b)
	}
}

func (b Box) arenaOrNew() *Arena {
	if b.arena != nil {
		return b.arena
	}
	return NewArena()
}

func (b Box) String() string {
	switch b.kind {
	case KindUniversal:
		return "U"
	case KindGeneric:
		return fmt.Sprintf("B[%s, %s)", endString(b.left), endString(b.right))
	case KindFixed:
		return fmt.Sprintf("F(%d)", b.at)
	case KindAbsurd:
		return "⊥"
	}
	return b.kind.String()
}

// endString marks fixed ends with '!' and floating ends with '~'.
func endString(p Point) string {
	switch p.Kind() {
	case KindFixed:
		return fmt.Sprintf("%d!", p.Value())
	case KindUniversal:
		return fmt.Sprintf("%d~", p.Value())
	default:
		return fmt.Sprintf("%d", p.Value())
	}
}

// Intersect returns the tightest box satisfying both a and b. Absurd absorbs
// and universal is the identity.
//
// For two generic boxes the lower bound is the larger left value and the
// upper bound the smaller right value; each end keeps the Point that supplied
// it, preferring b's on ties. A lower bound above the upper bound is absurd.
func Intersect(a, b Box) Box {
	switch a.kind {
	case KindAbsurd:
		return a
	case KindUniversal:
		return b
	case KindFixed:
		switch b.kind {
		case KindAbsurd:
			return b
		case KindUniversal:
			return a
		case KindFixed:
			if a.at == b.at {
				return a
			}
		case KindGeneric:
			if b.contains(a.at) {
				return a
			}
		}
	case KindGeneric:
		switch b.kind {
		case KindAbsurd:
			return b
		case KindUniversal:
			return a
		case KindFixed:
			if a.contains(b.at) {
				return b
			}
		case KindGeneric:
			return intersectGeneric(a, b)
		}
	}
	return Box{kind: KindAbsurd, arena: arenaOf(a, b)}
}

func intersectGeneric(a, b Box) Box {
	l := a.left
	if b.left.Value() >= l.Value() {
		l = b.left
	}
	r := a.right
	if b.right.Value() <= r.Value() {
		r = b.right
	}
	if l.Value() > r.Value() {
		return Box{kind: KindAbsurd, arena: arenaOf(a, b)}
	}
	return newBox(l, r)
}

func arenaOf(a, b Box) *Arena {
	if a.arena != nil {
		return a.arena
	}
	return b.arena
}
