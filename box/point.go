package box

import (
	"fmt"

	"github.com/iw2rmb/cursorfit/internal/clamp"
)

// Point is an integer value constrained by a box held in an Arena.
//
// The zero Point is floating at 0.
type Point struct {
	arena *Arena
	slot  int
	value int
}

// Box returns the point's current box.
func (p Point) Box() Box {
	if p.arena == nil {
		return Box{}
	}
	return p.arena.slots[p.slot]
}

// Value returns the point's value clamped into its current box. The value of
// an absurd point is whatever it held last and carries no meaning.
func (p Point) Value() int {
	if p.arena == nil {
		return p.value
	}
	return newResolver().value(p)
}

func (p Point) Kind() Kind { return p.Box().kind }
func (p Point) IsFixed() bool { return p.Kind() == KindFixed }
func (p Point) IsFloating() bool { return p.Kind() == KindUniversal }
func (p Point) IsAbsurd() bool { return p.Kind() == KindAbsurd }

// Left returns a point n units to the left sharing p's box.
func (p Point) Left(n int) Point {
	return p.offset(-n)
}

// Right returns a point n units to the right sharing p's box.
func (p Point) Right(n int) Point {
	return p.offset(n)
}

func (p Point) offset(n int) Point {
	q := p
	q.value = p.Box().Clamp(clamp.Add(p.Value(), n))
	return q
}

// Copy returns a point with the same value and a private copy of p's box.
// The ends of the box are copied too, so narrowing them later does not
// reach the copy.
func (p Point) Copy() Point {
	a := p.arenaOrNew()
	return Point{arena: a, slot: a.alloc(newCopier(a).box(p.Box())), value: p.Value()}
}

// Floating returns a floating point at p's value.
func (p Point) Floating() Point {
	return p.arenaOrNew().Floating(p.Value())
}

// Fix returns a fixed point at p's value.
func (p Point) Fix() Point {
	return p.arenaOrNew().Fixed(p.Value())
}

// AddBox narrows p's box to its intersection with b and re-clamps p. The
// slot is shared, so every point derived with Left or Right observes the
// narrower box too.
//
// When the intersection is absurd the point becomes absurd and its value
// moves to the nearest edge of b.
func (p *Point) AddBox(b Box) {
	if p.arena == nil {
		a := b.arena
		if a == nil {
			a = NewArena()
		}
		p.arena = a
		p.slot = a.alloc(Box{kind: KindUniversal})
	}

	next := Intersect(p.Box(), b)
	p.arena.slots[p.slot] = next
	if next.kind == KindAbsurd {
		p.value = b.Clamp(p.value)
		return
	}
	p.value = next.Clamp(p.value)
}

func (p Point) arenaOrNew() *Arena {
	if p.arena != nil {
		return p.arena
	}
	return NewArena()
}

func (p Point) String() string {
	return fmt.Sprintf("p(%d, %v)", p.Value(), p.Box())
}
