package vecmath

import "github.com/hupe1980/vecmath/scalar"

// AddInPlace adds the corresponding components of other to v.
func AddInPlace[A comparable, S scalar.Float](v, other Vector[A, S]) {
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)+other.Component(a))
	}
}

// SubInPlace subtracts the corresponding components of other from v.
func SubInPlace[A comparable, S scalar.Float](v, other Vector[A, S]) {
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)-other.Component(a))
	}
}

// MulInPlace multiplies v componentwise by other.
func MulInPlace[A comparable, S scalar.Float](v, other Vector[A, S]) {
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)*other.Component(a))
	}
}

// DivInPlace divides v componentwise by other.
// A zero component of other is replaced by 1 for that axis, so a literal
// zero divisor never produces an infinity or NaN.
func DivInPlace[A comparable, S scalar.Float](v, other Vector[A, S]) {
	for _, a := range v.Axes() {
		d := other.Component(a)
		if d == 0 {
			d = 1
		}
		v.SetComponent(a, v.Component(a)/d)
	}
}

// AddScalarInPlace adds s to every component of v.
func AddScalarInPlace[A comparable, S scalar.Float](v Vector[A, S], s S) {
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)+s)
	}
}

// SubScalarInPlace subtracts s from every component of v.
func SubScalarInPlace[A comparable, S scalar.Float](v Vector[A, S], s S) {
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)-s)
	}
}

// ScaleInPlace multiplies every component of v by s.
func ScaleInPlace[A comparable, S scalar.Float](v Vector[A, S], s S) {
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)*s)
	}
}

// DivScalarInPlace divides every component of v by s.
// A zero s is replaced by 1, so a literal zero divisor never produces an
// infinity or NaN.
func DivScalarInPlace[A comparable, S scalar.Float](v Vector[A, S], s S) {
	if s == 0 {
		s = 1
	}
	for _, a := range v.Axes() {
		v.SetComponent(a, v.Component(a)/s)
	}
}

// NegInPlace flips the sign of every component of v.
func NegInPlace[A comparable, S scalar.Float](v Vector[A, S]) {
	ScaleInPlace(v, S(-1))
}

// Add returns a + b componentwise.
func Add[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](a, b V) V {
	return apply[V, A, S, PV](a, func(p Vector[A, S]) { AddInPlace(p, PV(&b)) })
}

// Sub returns a - b componentwise.
func Sub[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](a, b V) V {
	return apply[V, A, S, PV](a, func(p Vector[A, S]) { SubInPlace(p, PV(&b)) })
}

// Mul returns a * b componentwise.
func Mul[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](a, b V) V {
	return apply[V, A, S, PV](a, func(p Vector[A, S]) { MulInPlace(p, PV(&b)) })
}

// Div returns a / b componentwise, with the zero-divisor guard of
// DivInPlace.
func Div[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](a, b V) V {
	return apply[V, A, S, PV](a, func(p Vector[A, S]) { DivInPlace(p, PV(&b)) })
}

// AddScalar returns v with s added to every component.
func AddScalar[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, s S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { AddScalarInPlace(p, s) })
}

// SubScalar returns v with s subtracted from every component.
func SubScalar[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, s S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { SubScalarInPlace(p, s) })
}

// Scale returns v with every component multiplied by s.
func Scale[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, s S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { ScaleInPlace(p, s) })
}

// DivScalar returns v with every component divided by s, with the
// zero-divisor guard of DivScalarInPlace.
func DivScalar[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, s S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { DivScalarInPlace(p, s) })
}

// Neg returns v with the sign of every component flipped.
func Neg[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { NegInPlace(p) })
}
