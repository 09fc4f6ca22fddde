package vecmath_test

import (
	"fmt"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

// Example demonstrates the derived operation set on a three-dimensional
// consumer type. The copy-returning forms name the concrete vector, axis
// and scalar types; queries over the capability interface are inferred.
func Example() {
	v1 := testutil.V3(1, 2, 3)
	v2 := testutil.V3(4, 5, 6)

	sum := vecmath.Add[testutil.Vec3, testutil.Axis, float64](v1, v2)
	fmt.Println("sum:", sum)

	fmt.Println("dot:", vecmath.Dot(&v1, &v2))
	fmt.Printf("length: %.4f\n", vecmath.Length(&v1))

	// Output:
	// sum: [5 7 9]
	// dot: 32
	// length: 3.7417
}

// Example_transforms demonstrates structural transforms and their
// non-mutating forms, instantiated once for the concrete vector type.
func Example_transforms() {
	var (
		round = vecmath.Round[testutil.Vec3, testutil.Axis, float64]
		flip  = vecmath.Flip[testutil.Vec3, testutil.Axis, float64]
		zero  = vecmath.Zero[testutil.Vec3, testutil.Axis, float64]
	)

	v := testutil.V3(1.4, 2.6, 3)

	fmt.Println("rounded:", round(v))
	fmt.Println("flipped:", flip(v, testutil.X))
	fmt.Println("zeroed:", zero(v, testutil.Y, testutil.Z))
	fmt.Println("original:", v)

	// Output:
	// rounded: [1 3 3]
	// flipped: [-1.4 2.6 3]
	// zeroed: [1.4 0 0]
	// original: [1.4 2.6 3]
}
