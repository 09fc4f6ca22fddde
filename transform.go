package vecmath

import "github.com/hupe1980/vecmath/scalar"

// TranslateInPlace adds each delta in deltas to the component of the
// corresponding axis. Axes absent from deltas are untouched.
func TranslateInPlace[A comparable, S scalar.Float](v Vector[A, S], deltas map[A]S) {
	for _, a := range v.Axes() {
		if d, ok := deltas[a]; ok {
			v.SetComponent(a, v.Component(a)+d)
		}
	}
}

// TranslateByInPlace adds the corresponding components of delta to v.
func TranslateByInPlace[A comparable, S scalar.Float](v, delta Vector[A, S]) {
	AddInPlace(v, delta)
}

// FlipInPlace negates exactly the listed axes of v, leaving others
// untouched.
func FlipInPlace[A comparable, S scalar.Float](v Vector[A, S], axes ...A) {
	for _, a := range axes {
		v.SetComponent(a, -v.Component(a))
	}
}

// ZeroInPlace sets exactly the listed axes of v to zero.
func ZeroInPlace[A comparable, S scalar.Float](v Vector[A, S], axes ...A) {
	for _, a := range axes {
		v.SetComponent(a, 0)
	}
}

// FloorInPlace applies scalar.Floor to every component of v.
func FloorInPlace[A comparable, S scalar.Float](v Vector[A, S]) {
	for _, a := range v.Axes() {
		v.SetComponent(a, scalar.Floor(v.Component(a)))
	}
}

// CeilInPlace applies scalar.Ceil to every component of v.
func CeilInPlace[A comparable, S scalar.Float](v Vector[A, S]) {
	for _, a := range v.Axes() {
		v.SetComponent(a, scalar.Ceil(v.Component(a)))
	}
}

// RoundInPlace snaps every component of v to the nearest whole number,
// following the remainder policy of scalar.RoundToNearest.
func RoundInPlace[A comparable, S scalar.Float](v Vector[A, S]) {
	RoundToInPlace(v, S(1))
}

// RoundToInPlace snaps every component of v to the nearest multiple of inc.
func RoundToInPlace[A comparable, S scalar.Float](v Vector[A, S], inc S) {
	for _, a := range v.Axes() {
		v.SetComponent(a, scalar.RoundToNearest(v.Component(a), inc))
	}
}

// RoundToZeroInPlace rounds every component of v toward zero: negative
// components are ceiled, non-negative ones floored.
func RoundToZeroInPlace[A comparable, S scalar.Float](v Vector[A, S]) {
	for _, a := range v.Axes() {
		c := v.Component(a)
		if c < 0 {
			v.SetComponent(a, scalar.Ceil(c))
		} else {
			v.SetComponent(a, scalar.Floor(c))
		}
	}
}

// LerpInPlace moves every component of v toward the corresponding component
// of other by the fraction t: t=0 leaves v unchanged, t=1 reaches other.
func LerpInPlace[A comparable, S scalar.Float](v, other Vector[A, S], t S) {
	for _, a := range v.Axes() {
		c := v.Component(a)
		v.SetComponent(a, c+(other.Component(a)-c)*t)
	}
}

// Translate returns v with the deltas of the given axes added.
func Translate[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, deltas map[A]S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { TranslateInPlace(p, deltas) })
}

// TranslateBy returns v with the corresponding components of delta added.
func TranslateBy[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v, delta V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { TranslateByInPlace(p, PV(&delta)) })
}

// Flip returns v with exactly the listed axes negated.
func Flip[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, axes ...A) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { FlipInPlace(p, axes...) })
}

// Zero returns v with exactly the listed axes set to zero.
func Zero[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, axes ...A) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { ZeroInPlace(p, axes...) })
}

// Floor returns v with scalar.Floor applied to every component.
func Floor[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { FloorInPlace(p) })
}

// Ceil returns v with scalar.Ceil applied to every component.
func Ceil[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { CeilInPlace(p) })
}

// Round returns v with every component snapped to the nearest whole number.
func Round[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { RoundInPlace(p) })
}

// RoundTo returns v with every component snapped to the nearest multiple of
// inc.
func RoundTo[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V, inc S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { RoundToInPlace(p, inc) })
}

// RoundToZero returns v with every component rounded toward zero.
func RoundToZero[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v V) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { RoundToZeroInPlace(p) })
}

// Lerp returns v interpolated toward other by the fraction t.
func Lerp[V any, A comparable, S scalar.Float, PV Ptr[V, A, S]](v, other V, t S) V {
	return apply[V, A, S, PV](v, func(p Vector[A, S]) { LerpInPlace(p, PV(&other), t) })
}
