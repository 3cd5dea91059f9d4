// Package clamp holds the saturating integer helpers shared by the bounded
// and box packages.
package clamp

import "math"

// Int saturates v into [lo, hi]. When hi < lo the result is lo.
func Int(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lower raises v to at least lo.
func Lower(v, lo int) int {
	return max(v, lo)
}

// Upper lowers v to at most hi.
func Upper(v, hi int) int {
	return min(v, hi)
}

// Zero raises v to at least 0.
func Zero(v int) int {
	return Lower(v, 0)
}

// ZeroUpper saturates v into [0, hi].
func ZeroUpper(v, hi int) int {
	return Int(v, 0, hi)
}

// Add returns a+b, saturating at the int range instead of wrapping.
func Add(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// Sub returns a-b, saturating at the int range instead of wrapping.
func Sub(a, b int) int {
	if b == math.MinInt {
		if a >= 0 {
			return math.MaxInt
		}
		return a - b
	}
	return Add(a, -b)
}
