// Package linalg_test contains unit tests for Vector3.
package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/linalg"
	"github.com/stretchr/testify/require"
)

// TestVector3Accessors verifies X, Y, Z and String.
func TestVector3Accessors(t *testing.T) {
	v := linalg.NewVector3(1.0, 2.0, 3.0)

	require.Equal(t, 1.0, v.X())
	require.Equal(t, 2.0, v.Y())
	require.Equal(t, 3.0, v.Z())
	require.Equal(t, 3, v.Dim())
	require.Equal(t, 2.0, v.Summary())
	require.Equal(t, "Vector3(1, 2, 3)", v.String())
}

// TestVector3Cross covers the basis identities and failure kinds.
func TestVector3Cross(t *testing.T) {
	t.Parallel()

	ex := linalg.NewVector3(1.0, 0.0, 0.0)
	ey := linalg.NewVector3(0.0, 1.0, 0.0)
	ez := linalg.NewVector3(0.0, 0.0, 1.0)

	tests := []struct {
		name string
		a, b linalg.Vector3[float64]
		want linalg.Vector3[float64]
	}{
		{"x×y=z", ex, ey, ez},
		{"y×z=x", ey, ez, ex},
		{"z×x=y", ez, ex, ey},
		{"y×x=-z", ey, ex, ez.Neg()},
		{"parallel", ex, ex.Scale(5), linalg.NewVector3(0.0, 0.0, 0.0)},
		{"general", linalg.NewVector3(1.0, 2.0, 3.0), linalg.NewVector3(4.0, 5.0, 6.0), linalg.NewVector3(-3.0, 6.0, -3.0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Cross(tc.b)
			require.NoError(t, err)
			require.Truef(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}

	_, err := ex.Cross(MustVec(t, 1, 2))
	require.ErrorIs(t, err, linalg.ErrTypeMismatch)
	_, err = ex.Cross(nil)
	require.ErrorIs(t, err, linalg.ErrTypeMismatch)

	// any 3-D vector is cross-capable.
	got, err := ex.Cross(MustVec(t, 0, 1, 0))
	require.NoError(t, err)
	require.True(t, got.Equal(ez))
}

// TestVector3CrossAntiCommutes checks a×b == -(b×a) and a·(a×b) == 0.
func TestVector3CrossAntiCommutes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		a, err := linalg.Vec3[float64](RandVec(t, rng, 3))
		require.NoError(t, err)
		b, err := linalg.Vec3[float64](RandVec(t, rng, 3))
		require.NoError(t, err)

		ab, err := a.Cross(b)
		require.NoError(t, err)
		ba, err := b.Cross(a)
		require.NoError(t, err)
		RequireVecApprox(t, ab, ba.Neg())

		d, err := a.Dot(ab)
		require.NoError(t, err)
		require.InDelta(t, 0, d, tol)
	}
}

// TestVector3ArithmeticKeepsSubtype checks results stay Vector3.
func TestVector3ArithmeticKeepsSubtype(t *testing.T) {
	a := linalg.NewVector3(1.0, 2.0, 3.0)

	s, err := a.Add(linalg.NewVector3(1.0, 1.0, 1.0))
	require.NoError(t, err)
	require.Equal(t, 4.0, s.Z())

	d, err := a.Sub(a)
	require.NoError(t, err)
	require.Equal(t, 0.0, d.Y())

	m, err := a.Mul(a)
	require.NoError(t, err)
	require.Equal(t, 9.0, m.Z())

	q, err := a.Div(linalg.Num(0.5))
	require.NoError(t, err)
	require.Equal(t, 6.0, q.Z())

	require.Equal(t, -3.0, a.Neg().Z())
	require.True(t, a.Pos().Equal(a))

	_, err = a.Mul(linalg.Identity.S3)
	require.ErrorIs(t, err, linalg.ErrTypeMismatch)
}
