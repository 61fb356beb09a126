// Package linalg_test contains unit tests for the Vec2/Vec3 casts.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/linalg"
	"github.com/stretchr/testify/require"
)

// TestVec2 covers valid and invalid sources.
func TestVec2(t *testing.T) {
	t.Parallel()

	v, err := linalg.Vec2[float64](MustVec(t, 1, 2))
	require.NoError(t, err)
	require.Equal(t, 2.0, v.Y())

	_, err = linalg.Vec2[float64](MustVec(t, 1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrInvalidCast)
	_, err = linalg.Vec2[float64](nil)
	require.ErrorIs(t, err, linalg.ErrInvalidCast)

	s, err := linalg.Vec2FromSlice([]float64{5, 6})
	require.NoError(t, err)
	require.Equal(t, 5.0, s.X())

	for _, bad := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, err = linalg.Vec2FromSlice(bad)
		require.ErrorIs(t, err, linalg.ErrInvalidCast)
	}
}

// TestVec3 covers valid and invalid sources.
func TestVec3(t *testing.T) {
	t.Parallel()

	v, err := linalg.Vec3[float64](MustVec(t, 1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 3.0, v.Z())

	_, err = linalg.Vec3[float64](linalg.NewVector2(1.0, 2.0))
	require.ErrorIs(t, err, linalg.ErrInvalidCast)
	_, err = linalg.Vec3[float64](nil)
	require.ErrorIs(t, err, linalg.ErrInvalidCast)

	s, err := linalg.Vec3FromSlice([]float64{7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, 8.0, s.Y())

	_, err = linalg.Vec3FromSlice([]float64{1, 2, 3, 4})
	require.ErrorIs(t, err, linalg.ErrInvalidCast)
}

// TestCastCopies ensures a cast does not share storage with its source.
func TestCastCopies(t *testing.T) {
	src := []float64{1, 2}
	v, err := linalg.Vec2FromSlice(src)
	require.NoError(t, err)
	src[0] = 9
	require.Equal(t, 1.0, v.X())
}
