// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating kind/nil/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (kind → shape).

package linalg

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return linalgErrorf(tag, err)
}

// ValidateVector ensures o is a non-nil vector operand.
//
// Errors: ErrTypeMismatch when o is nil.
// Complexity: O(1).
func ValidateVector[T Number](o VectorLike[T]) error {
	if o == nil {
		return validatorErrorf("ValidateVector", ErrTypeMismatch)
	}

	return nil
}

// ValidateSameDim – Composite: Vector(b) → Dim(a) == Dim(b).
//
// Errors: ErrTypeMismatch (nil b), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameDim[T Number](a Vector[T], b VectorLike[T]) error {
	if err := ValidateVector(b); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if a.Dim() != b.Dim() {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVectorDim ensures o is a non-nil vector with exactly n components.
// A wrong dimension is a kind violation here (Vector2/Vector3 capability),
// so it reports ErrTypeMismatch, not ErrDimensionMismatch.
//
// Complexity: O(1).
func ValidateVectorDim[T Number](o VectorLike[T], n int) error {
	if o == nil || o.Dim() != n {
		return validatorErrorf("ValidateVectorDim", ErrTypeMismatch)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → operand(b) present → Dim(a) == Dim(b).
// A nil b is the wrong operand kind (ErrTypeMismatch).
//
// Errors: ErrNilMatrix, ErrTypeMismatch, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if b == nil {
		return validatorErrorf("ValidateSameShape", ErrTypeMismatch)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMatVec – Composite: NotNil(m) → Vector(v) → Dim(v) == Cols(m).
//
// Errors: ErrNilMatrix, ErrTypeMismatch, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMatVec[T Number](m *Matrix[T], v VectorLike[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateMatVec", err)
	}
	if err := ValidateVector(v); err != nil {
		return validatorErrorf("ValidateMatVec", err)
	}
	if v.Dim() != m.c {
		return validatorErrorf("ValidateMatVec", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: SameShape(a, b) → Square(a).
// The product kernel iterates k over a's columns and reads b[k][j] for
// j over a's columns, so b must have a's shape and that shape must be square.
//
// Errors: ErrNilMatrix, ErrTypeMismatch, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.r != a.c {
		return validatorErrorf("ValidateMulCompatible: Square", ErrDimensionMismatch)
	}

	return nil
}
