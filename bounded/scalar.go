// Package bounded implements integers confined to a closed range whose bounds
// only ever narrow as values are combined.
//
// A Scalar combined with another Scalar takes the intersection of both
// bounds; combined with a plain Int it keeps its own. The arithmetic result is
// then saturated into the resulting bound.
package bounded

import (
	"errors"
	"fmt"
	"math"

	"github.com/iw2rmb/cursorfit/internal/clamp"
)

// ErrInvalidBound is returned when a bound would be empty (lo > hi).
var ErrInvalidBound = errors.New("bounded: invalid bound")

// Scalar is an integer value within [Lo, Hi].
//
// The zero Scalar is <0, [0, 0]>.
type Scalar struct {
	value int
	lo    int
	hi    int
}

// Operand is anything a Scalar can be combined with: another Scalar or an Int.
type Operand interface {
	operand() (value, lo, hi int)
}

// Int is a raw integer operand. It places no restriction on the bound.
type Int int

func (n Int) operand() (int, int, int) { return int(n), math.MinInt, math.MaxInt }

func (s Scalar) operand() (int, int, int) { return s.value, s.lo, s.hi }

// New returns <value, [lo, hi]> with value saturated into the bound.
func New(value, lo, hi int) (Scalar, error) {
	if lo > hi {
		return Scalar{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidBound, lo, hi)
	}
	return Scalar{value: clamp.Int(value, lo, hi), lo: lo, hi: hi}, nil
}

// MustNew is New for bounds known to be valid; it panics otherwise.
func MustNew(value, lo, hi int) Scalar {
	s, err := New(value, lo, hi)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Scalar) Value() int { return s.value }
func (s Scalar) Lo() int { return s.lo }
func (s Scalar) Hi() int { return s.hi }

// AtUpper reports whether the value sits on the upper bound.
func (s Scalar) AtUpper() bool { return s.value == s.hi }

// AtLower reports whether the value sits on the lower bound.
func (s Scalar) AtLower() bool { return s.value == s.lo }

func (s Scalar) String() string {
	return fmt.Sprintf("<%d, [%d, %d]>", s.value, s.lo, s.hi)
}

// Add returns s+o within the narrowed bound.
func (s Scalar) Add(o Operand) (Scalar, error) {
	return s.combine(o, clamp.Add)
}

// Sub returns s-o within the narrowed bound.
func (s Scalar) Sub(o Operand) (Scalar, error) {
	return s.combine(o, clamp.Sub)
}

// AddAssign replaces s with s+o. On error s is left untouched.
func (s *Scalar) AddAssign(o Operand) error {
	next, err := s.Add(o)
	if err != nil {
		return err
	}
	*s = next
	return nil
}

// SubAssign replaces s with s-o. On error s is left untouched.
func (s *Scalar) SubAssign(o Operand) error {
	next, err := s.Sub(o)
	if err != nil {
		return err
	}
	*s = next
	return nil
}

func (s Scalar) combine(o Operand, f func(a, b int) int) (Scalar, error) {
	ov, olo, ohi := o.operand()
	lo := max(s.lo, olo)
	hi := min(s.hi, ohi)
	if lo > hi {
		return Scalar{}, fmt.Errorf("%w: %v and [%d, %d] do not overlap", ErrInvalidBound, s, olo, ohi)
	}
	return Scalar{value: clamp.Int(f(s.value, ov), lo, hi), lo: lo, hi: hi}, nil
}

// Overlaps reports whether the bounds of s and o share at least one value.
func (s Scalar) Overlaps(o Operand) bool {
	_, olo, ohi := o.operand()
	return max(s.lo, olo) <= min(s.hi, ohi)
}

// Cmp compares values only: -1, 0 or +1. Bounds are ignored, so scalars with
// disjoint bounds compare like plain integers.
func (s Scalar) Cmp(o Operand) int {
	ov, _, _ := o.operand()
	switch {
	case s.value < ov:
		return -1
	case s.value > ov:
		return 1
	default:
		return 0
	}
}

func (s Scalar) Less(o Operand) bool { return s.Cmp(o) < 0 }
func (s Scalar) Greater(o Operand) bool { return s.Cmp(o) > 0 }
func (s Scalar) LessEq(o Operand) bool { return s.Cmp(o) <= 0 }
func (s Scalar) GreaterEq(o Operand) bool { return s.Cmp(o) >= 0 }
