package testutil

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/scalar"
)

// Axis labels the components of the reference vector types.
type Axis int

const (
	X Axis = iota
	Y
	Z
	W
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case W:
		return "W"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// Vec2 is an array-backed two-dimensional float64 vector.
type Vec2 [2]float64

// V2 builds a Vec2 from its components.
func V2(x, y float64) Vec2 { return Vec2{x, y} }

// Axes enumerates the component labels of a Vec2.
func (v Vec2) Axes() []Axis { return []Axis{X, Y} }

// Component returns the component for the given axis.
func (v Vec2) Component(a Axis) float64 { return v[a] }

// SetComponent overwrites the component for the given axis.
func (v *Vec2) SetComponent(a Axis, s float64) { v[a] = s }

// Vec3 is an array-backed three-dimensional float64 vector.
type Vec3 [3]float64

// V3 builds a Vec3 from its components.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Axes enumerates the component labels of a Vec3.
func (v Vec3) Axes() []Axis { return []Axis{X, Y, Z} }

// Component returns the component for the given axis.
func (v Vec3) Component(a Axis) float64 { return v[a] }

// SetComponent overwrites the component for the given axis.
func (v *Vec3) SetComponent(a Axis, s float64) { v[a] = s }

// Vec4 is an array-backed four-dimensional float64 vector.
type Vec4 [4]float64

// V4 builds a Vec4 from its components.
func V4(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }

// Axes enumerates the component labels of a Vec4.
func (v Vec4) Axes() []Axis { return []Axis{X, Y, Z, W} }

// Component returns the component for the given axis.
func (v Vec4) Component(a Axis) float64 { return v[a] }

// SetComponent overwrites the component for the given axis.
func (v *Vec4) SetComponent(a Axis, s float64) { v[a] = s }

// Vec2F32 is a field-backed two-dimensional float32 vector. It exists to
// exercise both scalar-width genericity and the freedom to store components
// in named fields rather than an array.
type Vec2F32 struct {
	X, Y float32
}

// Axes enumerates the component labels of a Vec2F32.
func (v Vec2F32) Axes() []Axis { return []Axis{X, Y} }

// Component returns the component for the given axis.
func (v Vec2F32) Component(a Axis) float32 {
	if a == X {
		return v.X
	}
	return v.Y
}

// SetComponent overwrites the component for the given axis.
func (v *Vec2F32) SetComponent(a Axis, s float32) {
	if a == X {
		v.X = s
	} else {
		v.Y = s
	}
}

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 { return r.rand.Float64() }

// FillUniform fills every axis of v with a random value in [0, 1).
func FillUniform[A comparable, S scalar.Float](r *RNG, v vecmath.Vector[A, S]) {
	FillUniformRange(r, v, 0, 1)
}

// FillUniformRange fills every axis of v with a random value in
// [minVal, maxVal).
func FillUniformRange[A comparable, S scalar.Float](r *RNG, v vecmath.Vector[A, S], minVal, maxVal S) {
	span := maxVal - minVal
	for _, a := range v.Axes() {
		v.SetComponent(a, minVal+S(r.rand.Float64())*span)
	}
}
