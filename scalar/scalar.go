package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types the library operates on: any type whose
// underlying type is float32 or float64.
type Float interface {
	constraints.Float
}

// Convert changes the floating-point representation of v to To.
func Convert[To, S Float](v S) To {
	return To(v)
}

// RoundToNearest snaps v to the nearest multiple of inc.
//
// The remainder of v against inc decides the direction: below inc/2 snaps
// down, otherwise up. inc must be positive; this is not validated and a zero
// or negative increment produces NaN or a nonsensical result, as plain
// IEEE-754 arithmetic would.
func RoundToNearest[S Float](v, inc S) S {
	rem := Mod(v, inc)
	if rem < inc/2 {
		return v - rem
	}
	return v + (inc - rem)
}

// Radians converts degrees to radians.
func Radians[S Float](deg S) S {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees[S Float](rad S) S {
	return rad * (180 / math.Pi)
}

// Floor rounds v down to the nearest whole number, computed from the
// truncating remainder of v against 1 rather than a platform primitive.
func Floor[S Float](v S) S {
	rem := Mod(v, 1)
	if rem == 0 {
		return v
	}
	if v < 0 {
		return v - rem - 1
	}
	return v - rem
}

// Ceil rounds v up to the nearest whole number, computed from the truncating
// remainder of v against 1. Exact integers are returned unchanged.
func Ceil[S Float](v S) S {
	rem := Mod(v, 1)
	if rem == 0 {
		return v
	}
	if v < 0 {
		return v - rem
	}
	return v + (1 - rem)
}

// MapLinear remaps v from the range [a1, a2] to the range [b1, b2].
//
// The source range is not validated: a1 == a2 divides by zero and yields
// an infinity, matching unguarded IEEE-754 arithmetic.
func MapLinear[S Float](v, a1, a2, b1, b2 S) S {
	return b1 + (v-a1)*(b2-b1)/(a2-a1)
}

// Clamp limits v to the inclusive range [minVal, maxVal].
func Clamp[S Float](v, minVal, maxVal S) S {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// SmoothStep maps v to [0, 1] with a cubic Hermite ramp between edge0 and
// edge1: 0 below edge0, 1 above edge1, 3t²-2t³ in between.
func SmoothStep[S Float](v, edge0, edge1 S) S {
	if v <= edge0 {
		return 0
	}
	if v >= edge1 {
		return 1
	}
	t := (v - edge0) / (edge1 - edge0)
	return t * t * (3 - 2*t)
}

// SmootherStep is the quintic variant of SmoothStep with zero first and
// second derivatives at both edges: t³(t(6t-15)+10).
func SmootherStep[S Float](v, edge0, edge1 S) S {
	t := Clamp((v-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// AbsDistance returns the absolute difference |a - b|.
func AbsDistance[S Float](a, b S) S {
	if a > b {
		return a - b
	}
	return b - a
}
