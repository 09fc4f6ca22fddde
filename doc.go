// Package vecmath provides axis-generic vector arithmetic for Go.
//
// A consumer defines a minimal vector type — an axis label type, and indexed
// get/set access to one scalar component per axis — and receives the full
// derived operation set: componentwise arithmetic, length and distance
// metrics, dot and cross products, normalization, translation, flipping,
// rounding and interpolation. The algorithms are written once against the
// Vector capability and never per dimension.
//
// # Capability
//
// Any type whose pointer implements Vector gains the API:
//
//	type Axis int
//
//	const (
//	    X Axis = iota
//	    Y
//	    Z
//	)
//
//	type Vec3 [3]float64
//
//	func (v Vec3) Axes() []Axis                    { return []Axis{X, Y, Z} }
//	func (v Vec3) Component(a Axis) float64        { return v[a] }
//	func (v *Vec3) SetComponent(a Axis, s float64) { v[a] = s }
//
// # Mutating and non-mutating forms
//
// Every transform exists in two spellings. The ...InPlace form mutates the
// operand through the Vector interface; the plain form copies the operand,
// mutates the copy and returns it. Pure queries (Length, Dot, Distance, ...)
// have a single form. The interface-taking forms infer their type arguments
// from the operand:
//
//	vecmath.ScaleInPlace(&v, 2.0) // v doubled in place
//	d := vecmath.Length(&v)
//
// The copy-returning forms take the concrete vector by value, so the axis
// and scalar types cannot be inferred from the call alone; name them
// explicitly (the trailing pointer parameter is always inferred), or
// instantiate the forms once per concrete type:
//
//	w := vecmath.Scale[Vec3, Axis, float64](v, 2.0) // v untouched
//
//	var (
//	    scale = vecmath.Scale[Vec3, Axis, float64]
//	    add   = vecmath.Add[Vec3, Axis, float64]
//	)
//	w = scale(v, 2.0)
//
// # Division guards
//
// Dividing by a zero scalar, by a zero component, or normalizing a
// zero-length vector substitutes 1 for the offending divisor instead of
// producing infinities or NaNs. All other degenerate inputs follow plain
// IEEE-754 arithmetic.
//
// The implementation favors generality over throughput; it is not a SIMD
// kernel.
package vecmath
