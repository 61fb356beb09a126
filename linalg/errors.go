// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. Every operation MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; Must* helpers are the only
// exception and exist for package-level constants and fixtures.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency and easy
// grepping. Operations wrap with their tag via linalgErrorf ("Vector.Add: %w"),
// callers still match the sentinel with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/kind (ErrTypeMismatch, ErrNilMatrix) -> shape (ErrDimensionMismatch)
// -> arithmetic (ErrArithmetic, ErrDivisionByZero).

var (
	// ErrTypeMismatch is returned when an operand has the wrong kind for the
	// operation: adding a non-vector to a Vector, multiplying a Vector by a
	// Matrix, a nil operand, a non-3D operand to Cross, and so on.
	ErrTypeMismatch = errors.New("linalg: operand type mismatch")

	// ErrDimensionMismatch indicates operands of compatible kind but
	// incompatible size: vectors of differing Dim, matrices of differing Dim
	// for Add/Sub/Mul, or a matrix-vector product with Cols != Dim.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrArithmetic signals an arithmetic operation that is undefined for the
	// given operands, specifically division by a vector or a matrix.
	ErrArithmetic = errors.New("linalg: arithmetic error")

	// ErrInvalidCast is returned by Vec2/Vec3 (and their slice forms) when the
	// source does not have exactly 2 (resp. 3) components.
	ErrInvalidCast = errors.New("linalg: invalid cast")

	// ErrInvalidDimensions indicates an empty vector or a matrix with no rows
	// or no columns.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrBadShape is returned when matrix rows have differing lengths.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates that a component, row or column index is outside
	// valid bounds. Public indexers (At/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrImmutable is returned by every attempt to assign a matrix entry.
	ErrImmutable = errors.New("linalg: matrix is immutable")
)

// ErrDivisionByZero is returned when a vector or matrix is divided by a zero
// scalar. It wraps ErrArithmetic, so errors.Is(err, ErrArithmetic) holds too.
var ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)

// linalgErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
