package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of v.
// Plain float32 operands use the math32 kernel directly.
func Sqrt[S Float](v S) S {
	if f, ok := any(v).(float32); ok {
		return S(math32.Sqrt(f))
	}
	return S(math.Sqrt(float64(v)))
}

// Mod returns the truncating remainder of v against m.
// The result keeps the sign of v, like math.Mod.
func Mod[S Float](v, m S) S {
	if f, ok := any(v).(float32); ok {
		if fm, ok := any(m).(float32); ok {
			return S(math32.Mod(f, fm))
		}
	}
	return S(math.Mod(float64(v), float64(m)))
}

// Abs returns the absolute value of v.
func Abs[S Float](v S) S {
	if v < 0 {
		return -v
	}
	return v
}
