// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and examples only. It ships
// reference implementations of the Vector capability (Vec2, Vec3, Vec4 over
// float64 and a field-backed float32 Vec2F32) and a seeded random number
// generator for property-style tests.
//
// # Reference Vectors
//
//	add := vecmath.Add[testutil.Vec3, testutil.Axis, float64]
//
//	v := testutil.V3(1, 2, 3)
//	sum := add(v, testutil.V3(4, 5, 6))
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	var v testutil.Vec3
//	testutil.FillUniformRange(rng, &v, -1, 1)
package testutil
