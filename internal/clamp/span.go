package clamp

// Span is a plain half-open interval [L, R) with no fixed/floating state.
//
// It is the scratch type used when a caller only needs numeric bounds, e.g.
// clamping slice offsets into a line.
type Span struct {
	L int
	R int
}

// Len is R-L, never negative.
func (s Span) Len() int {
	return Zero(s.R - s.L)
}

// Clamp saturates both ends into [lo, hi].
func (s Span) Clamp(lo, hi int) Span {
	return Span{L: Int(s.L, lo, hi), R: Int(s.R, lo, hi)}
}

// Regauge translates the span so that L is 0.
func (s Span) Regauge() Span {
	return Span{L: 0, R: s.R - s.L}
}
