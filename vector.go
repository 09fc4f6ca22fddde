package vecmath

import "github.com/hupe1980/vecmath/scalar"

// Vector is the capability a concrete vector type must provide to receive
// the full derived operation set of this package.
//
// A is the axis label type: any comparable type whose values identify the
// vector's components. Axes must return the same fixed, non-empty set of
// labels for every value of the implementing type; its length is the
// vector's dimension. Component and SetComponent must cover every label
// Axes returns. Storage layout is the implementer's choice.
type Vector[A comparable, S scalar.Float] interface {
	// Axes enumerates the component labels, in a stable order.
	Axes() []A
	// Component returns the scalar component for the given axis.
	Component(axis A) S
	// SetComponent overwrites the scalar component for the given axis.
	SetComponent(axis A, value S)
}

// Ptr constrains PV to the pointer type of a concrete vector V that
// implements Vector. Non-mutating operations use it to copy a value operand
// and apply the mutating primitive to the copy.
type Ptr[V any, A comparable, S scalar.Float] interface {
	*V
	Vector[A, S]
}

// apply copies v, runs fn on the copy and returns it. Every non-mutating
// operation is derived this way from its mutating counterpart.
func apply[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, fn func(Vector[A, S])) V {
	out := v
	fn(PV(&out))
	return out
}
