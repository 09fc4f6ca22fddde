// Package scalar provides generic helpers on a single floating-point value.
//
// Every function is pure and generic over the Float constraint, so the same
// helper works for float32, float64, and any type whose underlying type is
// one of the two. The vector layer in the root package is built on top of
// these helpers; they carry no dependency in the other direction.
//
// # Usage
//
//	snapped := scalar.RoundToNearest(1.3333, 0.25) // 1.25
//	t := scalar.SmoothStep(x, 0, 1)
//	rad := scalar.Radians(deg)
//
// # Width dispatch
//
// Sqrt, Mod and Abs pick a float32 kernel (chewxy/math32) when the operand
// is a plain float32, avoiding a round trip through float64. Named float32
// types fall back to the float64 path, which is numerically equivalent.
package scalar
