// Package linalg_test contains unit tests for Vector2.
package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecmat/linalg"
	"github.com/stretchr/testify/require"
)

// TestVector2Accessors verifies X, Y, Dim, Complex and String.
func TestVector2Accessors(t *testing.T) {
	v := linalg.NewVector2(3.0, -4.0)

	require.Equal(t, 3.0, v.X())
	require.Equal(t, -4.0, v.Y())
	require.Equal(t, 2, v.Dim())
	require.Equal(t, 3-4i, v.Complex())
	require.InDelta(t, 5.0, v.Norm(), tol)
	require.Equal(t, "Vector2(3, -4)", v.String())

	var zero linalg.Vector2[float64]
	require.Equal(t, 0.0, zero.X())
	require.Equal(t, 0, zero.Dim())
}

// TestVector2ArithmeticKeepsSubtype checks results stay Vector2.
func TestVector2ArithmeticKeepsSubtype(t *testing.T) {
	t.Parallel()

	a := linalg.NewVector2(1.0, 2.0)
	b := linalg.NewVector2(3.0, 5.0)

	s, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 4.0, s.X())
	require.Equal(t, 7.0, s.Y())

	d, err := b.Sub(a)
	require.NoError(t, err)
	require.True(t, d.Equal(linalg.NewVector2(2.0, 3.0)))

	// a Vector2 accepts any 2-D vector, including a generic Vector.
	g, err := a.Add(MustVec(t, 10, 10))
	require.NoError(t, err)
	require.Equal(t, 12.0, g.Y())

	m, err := a.Mul(linalg.Num(3.0))
	require.NoError(t, err)
	require.Equal(t, 6.0, m.Y())

	q, err := b.Div(linalg.Num(2.0))
	require.NoError(t, err)
	require.Equal(t, 2.5, q.Y())

	require.True(t, a.Neg().Equal(linalg.NewVector2(-1.0, -2.0)))
	require.True(t, a.Pos().Equal(a))
	require.True(t, a.Scale(2).Equal(linalg.NewVector2(2.0, 4.0)))

	_, err = a.Add(MustVec(t, 1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = a.Div(b)
	require.ErrorIs(t, err, linalg.ErrArithmetic)
}

// TestVector2Rotate checks counterclockwise rotation about the origin.
func TestVector2Rotate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     linalg.Vector2[float64]
		theta float64
		want  linalg.Vector2[float64]
	}{
		{"quarter turn", linalg.NewVector2(1.0, 0.0), math.Pi / 2, linalg.NewVector2(0.0, 1.0)},
		{"half turn", linalg.NewVector2(1.0, 2.0), math.Pi, linalg.NewVector2(-1.0, -2.0)},
		{"clockwise", linalg.NewVector2(0.0, 1.0), -math.Pi / 2, linalg.NewVector2(1.0, 0.0)},
		{"full turn", linalg.NewVector2(3.0, 4.0), 2 * math.Pi, linalg.NewVector2(3.0, 4.0)},
		{"zero", linalg.NewVector2(3.0, 4.0), 0, linalg.NewVector2(3.0, 4.0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			RequireVecApprox(t, tc.want, tc.v.Rotate(tc.theta))
		})
	}
}

// TestVector2RotateAbout checks rotation around an arbitrary center.
func TestVector2RotateAbout(t *testing.T) {
	t.Parallel()

	v := linalg.NewVector2(2.0, 1.0)
	center := linalg.NewVector2(1.0, 1.0)

	r, err := v.RotateAbout(math.Pi/2, center)
	require.NoError(t, err)
	RequireVecApprox(t, linalg.NewVector2(1.0, 2.0), r)

	// the distance to the center is preserved.
	d0, _ := v.Sub(center)
	d1, _ := r.Sub(center)
	require.InDelta(t, d0.Norm(), d1.Norm(), tol)

	// a generic 2-D Vector is an acceptable center.
	r2, err := v.RotateAbout(math.Pi/2, MustVec(t, 1, 1))
	require.NoError(t, err)
	RequireVecApprox(t, r, r2)

	_, err = v.RotateAbout(math.Pi, MustVec(t, 1, 1, 1))
	require.ErrorIs(t, err, linalg.ErrTypeMismatch)
	_, err = v.RotateAbout(math.Pi, nil)
	require.ErrorIs(t, err, linalg.ErrTypeMismatch)
}

// TestVector2RotateFloat32 exercises rotation on a narrower element type.
func TestVector2RotateFloat32(t *testing.T) {
	v := linalg.NewVector2[float32](1, 0)
	r := v.Rotate(math.Pi / 2)
	require.InDelta(t, 0, float64(r.X()), 1e-6)
	require.InDelta(t, 1, float64(r.Y()), 1e-6)
}
