package vecmath_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func TestLength(t *testing.T) {
	tests := []struct {
		name     string
		v        testutil.Vec3
		expected float64
	}{
		{"Simple", testutil.V3(1, 2, 3), math.Sqrt(14)},
		{"Zero", testutil.Vec3{}, 0},
		{"Unit", testutil.V3(1, 0, 0), 1},
		{"Negative", testutil.V3(-3, 4, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, vecmath.Length(&tt.v), 1e-12)
			assert.InDelta(t, tt.expected*tt.expected, vecmath.SquaredLength(&tt.v), 1e-12)
		})
	}
}

func TestManhattanLength(t *testing.T) {
	v := testutil.V3(1, -2, 3)
	assert.InDelta(t, 6.0, vecmath.ManhattanLength(&v), 1e-12)
}

func TestDistance(t *testing.T) {
	a := testutil.V3(1, 2, 3)
	b := testutil.V3(4, 6, 3)

	assert.InDelta(t, 25.0, vecmath.SquaredDistance(&a, &b), 1e-12)
	assert.InDelta(t, 5.0, vecmath.Distance(&a, &b), 1e-12)
	assert.InDelta(t, 7.0, vecmath.ManhattanDistance(&a, &b), 1e-12)
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     testutil.Vec3
		expected float64
	}{
		{"Simple", testutil.V3(1, 2, 3), testutil.V3(4, 5, 6), 32},
		{"Orthogonal", testutil.V3(1, 0, 0), testutil.V3(0, 1, 0), 0},
		{"Mixed", testutil.V3(1, -1, 2), testutil.V3(1, 1, -2), -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, vecmath.Dot(&tt.a, &tt.b), 1e-12)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("UnitLength", func(t *testing.T) {
		n := normalize(testutil.V3(3, 4, 0))
		assert.InDelta(t, 0.6, n[0], 1e-12)
		assert.InDelta(t, 0.8, n[1], 1e-12)
		assert.InDelta(t, 1.0, vecmath.Length(&n), 1e-12)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		// Zero length substitutes 1 as the divisor: the zero vector is
		// returned unchanged, never NaN.
		n := normalize(testutil.Vec3{})
		assert.Equal(t, testutil.Vec3{}, n)
		for _, c := range n {
			assert.False(t, math.IsNaN(c))
		}
	})

	t.Run("Float32", func(t *testing.T) {
		n := normalizeF32(testutil.Vec2F32{X: 3, Y: 4})
		assert.InDelta(t, float32(0.6), n.X, 1e-6)
		assert.InDelta(t, float32(0.8), n.Y, 1e-6)
	})
}

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     testutil.Vec3
		expected testutil.Vec3
	}{
		{"UnitXY", testutil.V3(1, 0, 0), testutil.V3(0, 1, 0), testutil.V3(0, 0, 1)},
		{"UnitYZ", testutil.V3(0, 1, 0), testutil.V3(0, 0, 1), testutil.V3(1, 0, 0)},
		{"General", testutil.V3(1, 2, 3), testutil.V3(4, 5, 6), testutil.V3(-3, 6, -3)},
		{"Parallel", testutil.V3(2, 4, 6), testutil.V3(1, 2, 3), testutil.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cross(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("AntiCommutative", func(t *testing.T) {
		ab, err := cross(testutil.V3(1, 2, 3), testutil.V3(4, 5, 6))
		require.NoError(t, err)
		ba, err := cross(testutil.V3(4, 5, 6), testutil.V3(1, 2, 3))
		require.NoError(t, err)
		assert.Equal(t, ab, neg(ba))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := crossV2(testutil.V2(1, 2), testutil.V2(3, 4))
		require.Error(t, err)

		var dimErr *vecmath.ErrDimensionMismatch
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 3, dimErr.Expected)
		assert.Equal(t, 2, dimErr.Actual)

		// No wrapped cause behind the mismatch itself
		assert.Nil(t, errors.Unwrap(dimErr))
	})
}

func TestGeomProperties(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < 50; i++ {
		var v, w testutil.Vec3
		testutil.FillUniformRange(rng, &v, -10, 10)
		testutil.FillUniformRange(rng, &w, -10, 10)

		// Distance symmetry
		assert.InDelta(t, vecmath.Distance(&v, &w), vecmath.Distance(&w, &v), 1e-12)

		// distanceSquared == distance²
		d := vecmath.Distance(&v, &w)
		assert.InDelta(t, d*d, vecmath.SquaredDistance(&v, &w), 1e-9)

		// Dot symmetry
		assert.InDelta(t, vecmath.Dot(&v, &w), vecmath.Dot(&w, &v), 1e-12)

		// Normalized length is 1 for non-zero vectors
		if vecmath.Length(&v) > 0 {
			n := normalize(v)
			assert.InDelta(t, 1.0, vecmath.Length(&n), 1e-12)
		}
	}
}
