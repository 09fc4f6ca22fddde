package vecmath

import "github.com/hupe1980/vecmath/scalar"

// SquaredLength returns the sum over all axes of the squared component.
func SquaredLength[A comparable, S scalar.Float](v Vector[A, S]) S {
	var sum S
	for _, a := range v.Axes() {
		c := v.Component(a)
		sum += c * c
	}
	return sum
}

// Length returns the Euclidean length of v.
func Length[A comparable, S scalar.Float](v Vector[A, S]) S {
	return scalar.Sqrt(SquaredLength(v))
}

// ManhattanLength returns the sum over all axes of the absolute component.
func ManhattanLength[A comparable, S scalar.Float](v Vector[A, S]) S {
	var sum S
	for _, a := range v.Axes() {
		sum += scalar.Abs(v.Component(a))
	}
	return sum
}

// SquaredDistance returns the squared Euclidean distance between v and
// other. The per-axis difference goes through scalar.AbsDistance before
// squaring.
func SquaredDistance[A comparable, S scalar.Float](v, other Vector[A, S]) S {
	var sum S
	for _, a := range v.Axes() {
		d := scalar.AbsDistance(v.Component(a), other.Component(a))
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between v and other.
func Distance[A comparable, S scalar.Float](v, other Vector[A, S]) S {
	return scalar.Sqrt(SquaredDistance(v, other))
}

// ManhattanDistance returns the sum over all axes of the absolute per-axis
// difference between v and other.
func ManhattanDistance[A comparable, S scalar.Float](v, other Vector[A, S]) S {
	var sum S
	for _, a := range v.Axes() {
		sum += scalar.AbsDistance(v.Component(a), other.Component(a))
	}
	return sum
}

// Dot returns the dot product of v and other.
func Dot[A comparable, S scalar.Float](v, other Vector[A, S]) S {
	var sum S
	for _, a := range v.Axes() {
		sum += v.Component(a) * other.Component(a)
	}
	return sum
}

// NormalizeInPlace divides every component of v by its length.
// A zero-length v is left unchanged: the length divisor is replaced by 1
// instead of producing NaN components.
func NormalizeInPlace[A comparable, S scalar.Float](v Vector[A, S]) {
	DivScalarInPlace(v, Length(v))
}

// Normalize returns v divided by its length, with the zero-length guard of
// NormalizeInPlace.
func Normalize[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { NormalizeInPlace(p) })
}

// Cross returns the cross product of a and b.
//
// The cross product is only defined for three-dimensional vectors; any other
// axis count yields an *ErrDimensionMismatch. The component order follows
// the order Axes reports.
func Cross[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](a, b V) (V, error) {
	pa, pb := PV(&a), PV(&b)
	axes := pa.Axes()
	if len(axes) != 3 {
		var zero V
		return zero, &ErrDimensionMismatch{Expected: 3, Actual: len(axes)}
	}
	x, y, z := axes[0], axes[1], axes[2]

	out := a
	po := PV(&out)
	po.SetComponent(x, pa.Component(y)*pb.Component(z)-pa.Component(z)*pb.Component(y))
	po.SetComponent(y, pa.Component(z)*pb.Component(x)-pa.Component(x)*pb.Component(z))
	po.SetComponent(z, pa.Component(x)*pb.Component(y)-pa.Component(y)*pb.Component(x))
	return out, nil
}
