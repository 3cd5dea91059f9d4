package box

import "github.com/iw2rmb/cursorfit/internal/clamp"

type slotKey struct {
	arena *Arena
	slot  int
}

type slotBounds struct {
	lo, hi int
	ok     bool
}

// resolver reads point values through their endpoint boxes. Each slot is
// resolved at most once per read. A slot reached again while its own bounds
// are still being resolved contributes no bound, so cycles created by AddBox
// terminate.
type resolver struct {
	memo map[slotKey]slotBounds
}

func newResolver() *resolver {
	return &resolver{memo: make(map[slotKey]slotBounds)}
}

func (r *resolver) value(p Point) int {
	if p.arena == nil {
		return p.value
	}
	b, ok := r.bounds(p.arena, p.slot)
	if !ok {
		return p.value
	}
	return clamp.Int(p.value, b.lo, b.hi)
}

func (r *resolver) bounds(a *Arena, slot int) (slotBounds, bool) {
	k := slotKey{a, slot}
	if b, seen := r.memo[k]; seen {
		return b, b.ok
	}
	r.memo[k] = slotBounds{}

	var b slotBounds
	switch box := a.slots[slot]; box.kind {
	case KindGeneric:
		b = slotBounds{lo: r.value(box.left), hi: r.value(box.right), ok: true}
	case KindFixed:
		b = slotBounds{lo: box.at, hi: box.at, ok: true}
	}
	r.memo[k] = b
	return b, b.ok
}

// copier duplicates a box together with every box its ends depend on, so
// the copy never observes later narrowing of the source slots.
type copier struct {
	dst  *Arena
	done map[slotKey]int
}

func newCopier(dst *Arena) *copier {
	return &copier{dst: dst, done: make(map[slotKey]int)}
}

func (c *copier) point(p Point) Point {
	if p.arena == nil {
		return p
	}
	k := slotKey{p.arena, p.slot}
	if s, ok := c.done[k]; ok {
		return Point{arena: c.dst, slot: s, value: p.value}
	}
	s := c.dst.alloc(Box{})
	c.done[k] = s
	b := c.box(p.arena.slots[p.slot])
	b.arena = c.dst
	c.dst.slots[s] = b
	return Point{arena: c.dst, slot: s, value: p.value}
}

func (c *copier) box(b Box) Box {
	if b.kind != KindGeneric {
		return b
	}
	b.left = c.point(b.left)
	b.right = c.point(b.right)
	return b
}
