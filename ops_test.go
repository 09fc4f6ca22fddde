package vecmath_test

import (
	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

// The copy-returning forms carry the concrete vector's type arguments
// (the pointer parameter is inferred from them). Instantiate them once
// per reference type for use across the test files.
var (
	add         = vecmath.Add[testutil.Vec3, testutil.Axis, float64]
	sub         = vecmath.Sub[testutil.Vec3, testutil.Axis, float64]
	mul         = vecmath.Mul[testutil.Vec3, testutil.Axis, float64]
	div         = vecmath.Div[testutil.Vec3, testutil.Axis, float64]
	addScalar   = vecmath.AddScalar[testutil.Vec3, testutil.Axis, float64]
	subScalar   = vecmath.SubScalar[testutil.Vec3, testutil.Axis, float64]
	scale       = vecmath.Scale[testutil.Vec3, testutil.Axis, float64]
	divScalar   = vecmath.DivScalar[testutil.Vec3, testutil.Axis, float64]
	neg         = vecmath.Neg[testutil.Vec3, testutil.Axis, float64]
	normalize   = vecmath.Normalize[testutil.Vec3, testutil.Axis, float64]
	cross       = vecmath.Cross[testutil.Vec3, testutil.Axis, float64]
	translate   = vecmath.Translate[testutil.Vec3, testutil.Axis, float64]
	translateBy = vecmath.TranslateBy[testutil.Vec3, testutil.Axis, float64]
	flip        = vecmath.Flip[testutil.Vec3, testutil.Axis, float64]
	zero        = vecmath.Zero[testutil.Vec3, testutil.Axis, float64]
	floor       = vecmath.Floor[testutil.Vec3, testutil.Axis, float64]
	ceil        = vecmath.Ceil[testutil.Vec3, testutil.Axis, float64]
	round       = vecmath.Round[testutil.Vec3, testutil.Axis, float64]
	roundTo     = vecmath.RoundTo[testutil.Vec3, testutil.Axis, float64]
	roundToZero = vecmath.RoundToZero[testutil.Vec3, testutil.Axis, float64]
	lerp        = vecmath.Lerp[testutil.Vec3, testutil.Axis, float64]

	crossV2 = vecmath.Cross[testutil.Vec2, testutil.Axis, float64]

	addF32       = vecmath.Add[testutil.Vec2F32, testutil.Axis, float32]
	scaleF32     = vecmath.Scale[testutil.Vec2F32, testutil.Axis, float32]
	divScalarF32 = vecmath.DivScalar[testutil.Vec2F32, testutil.Axis, float32]
	normalizeF32 = vecmath.Normalize[testutil.Vec2F32, testutil.Axis, float32]
)
