// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (vectors, matrices) for kernels.
//   - Keep all data finite and well-formed so assertions stay exact where possible.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/linalg"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for floating-point comparisons.
const tol = 1e-9

// MustVec BUILDS a float64 Vector or fails the test.
func MustVec(t testing.TB, comps ...float64) linalg.Vector[float64] {
	t.Helper()
	v, err := linalg.NewVector(comps...)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", comps, err)
	}

	return v
}

// MustMat BUILDS a float64 Matrix from rows or fails the test.
func MustMat(t testing.TB, rows ...[]float64) *linalg.Matrix[float64] {
	t.Helper()
	m, err := linalg.NewMatrix(rows...)
	if err != nil {
		t.Fatalf("NewMatrix(%v): %v", rows, err)
	}

	return m
}

// RandVec RETURNS an n-dimensional Vector with deterministic U(-1,1) components.
func RandVec(t testing.TB, rng *rand.Rand, n int) linalg.Vector[float64] {
	t.Helper()
	comps := make([]float64, n)
	for i := range comps {
		comps[i] = rng.Float64()*2 - 1
	}

	return MustVec(t, comps...)
}

// RandMat RETURNS an r×c Matrix with deterministic U(-1,1) entries.
func RandMat(t testing.TB, rng *rand.Rand, r, c int) *linalg.Matrix[float64] {
	t.Helper()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustMat(t, rows...)
}

// RequireVecApprox ASSERTS want and got agree componentwise within tol.
func RequireVecApprox(t testing.TB, want, got linalg.VectorLike[float64]) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim(), "dimension")
	require.InDeltaSlice(t, want.Components(), got.Components(), tol)
}

// RequireMatEqual ASSERTS want and got are entry-for-entry identical.
func RequireMatEqual(t testing.TB, want, got *linalg.Matrix[float64]) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want\n%v\ngot\n%v", want, got)
}
