package main

import (
	"fmt"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/scalar"
)

// Axis is the consumer-defined component label set.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Point stores its components in named fields. Any storage layout works as
// long as the capability methods cover every axis.
type Point struct {
	X, Y, Z float64
}

func (p Point) Axes() []Axis { return []Axis{X, Y, Z} }

func (p Point) Component(a Axis) float64 {
	switch a {
	case X:
		return p.X
	case Y:
		return p.Y
	default:
		return p.Z
	}
}

func (p *Point) SetComponent(a Axis, v float64) {
	switch a {
	case X:
		p.X = v
	case Y:
		p.Y = v
	default:
		p.Z = v
	}
}

// The copy-returning forms are instantiated once for the concrete type;
// the pointer parameter is inferred.
var (
	add       = vecmath.Add[Point, Axis, float64]
	normalize = vecmath.Normalize[Point, Axis, float64]
	cross     = vecmath.Cross[Point, Axis, float64]
	translate = vecmath.Translate[Point, Axis, float64]
)

func main() {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: 5, Z: 6}

	fmt.Println("a + b       =", add(a, b))
	fmt.Println("a · b       =", vecmath.Dot(&a, &b))
	fmt.Println("|a|         =", vecmath.Length(&a))
	fmt.Println("normalized  =", normalize(a))

	crossed, err := cross(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println("a × b       =", crossed)

	moved := translate(a, map[Axis]float64{X: 10, Z: -1})
	fmt.Println("translated  =", moved)

	fmt.Println("snapped     =", scalar.RoundToNearest(1.3333, 0.25))
}
