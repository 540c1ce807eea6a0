package serseg

// Rounding selects how a raw byte offset is divided by a pointer scale.
//
// Floor and Ceiling are the usual integer divisions. Nearest is deliberately
// the literal historical rule, not round-half-to-even: an even value divides
// down, an odd value is bumped by one before dividing.
type Rounding uint8

const (
	// RoundFloor truncates the division result toward zero.
	RoundFloor Rounding = iota
	// RoundCeiling rounds the division result up to the next integer.
	RoundCeiling
	// RoundNearest divides value/scale when value is even, (value+1)/scale
	// when value is odd.
	RoundNearest
)

// String returns a human-readable name of the rounding policy.
func (r Rounding) String() string {
	switch r {
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	case RoundNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// Apply divides value by scale under the rounding policy.
//
// The scale must be positive; Apply panics on a zero scale the same way
// integer division does.
func (r Rounding) Apply(value int, scale int) int {
	switch r {
	case RoundCeiling:
		return (value + scale - 1) / scale
	case RoundNearest:
		if value%2 == 0 {
			return value / scale
		}

		return (value + 1) / scale
	default:
		return value / scale
	}
}

// ScaleSpec bundles a pointer scale with its rounding policy.
//
// Formats that store pointers in units other than bytes (2-byte words,
// 16-byte pages) declare the divisor here. The zero value means unscaled:
// scale 1 with floor rounding.
type ScaleSpec struct {
	scale    int
	rounding Rounding
}

// Scale creates a ScaleSpec with the given divisor and floor rounding.
//
// Chain Round to select a different policy:
//
//	serseg.Scale(2)                       // halved, floor
//	serseg.Scale(16).Round(serseg.RoundCeiling)
func Scale(n int) ScaleSpec {
	return ScaleSpec{scale: n, rounding: RoundFloor}
}

// Round returns a copy of the spec with the given rounding policy.
func (s ScaleSpec) Round(r Rounding) ScaleSpec {
	s.rounding = r

	return s
}

// apply converts a raw byte offset into the scaled pointer value.
func (s ScaleSpec) apply(value int) int {
	scale := s.scale
	if scale == 0 {
		scale = 1
	}

	return s.rounding.Apply(value, scale)
}
