// SPDX-License-Identifier: MIT
// Package linalg - vector arithmetic kernels.
//
// Purpose:
//   - Implement the base arithmetic contract shared by Vector, Vector2 and Vector3:
//     componentwise Add/Sub, negation, scalar/Hadamard Mul, scalar Div, Dot.
//   - Resolve Mul/Div by the operand kind (scalar → vector → anything else).
//
// Notes:
//   - Every kernel allocates one fresh component slice; receivers are never written.
//   - Vector2/Vector3 call these kernels and re-wrap the result, which keeps
//     their dimension by construction (same-dim operands only).

package linalg

// Operation name constants for unified error wrapping.
const (
	opVecAdd = "Vector.Add"
	opVecSub = "Vector.Sub"
	opVecMul = "Vector.Mul"
	opVecDiv = "Vector.Div"
	opVecDot = "Vector.Dot"
)

// addSub computes out = v + sign*o componentwise for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameDim(v, o).
//   - Stage 2: single loop pairing components positionally.
//
// Errors:
//   - ErrTypeMismatch (nil o), ErrDimensionMismatch (differing Dim).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v Vector[T]) addSub(o VectorLike[T], sign T, opTag string) (Vector[T], error) {
	if err := ValidateSameDim(v, o); err != nil {
		return Vector[T]{}, linalgErrorf(opTag, err)
	}
	oc := o.base().comps
	out := make([]T, len(v.comps))
	for i := range v.comps { // deterministic 0..n-1
		out[i] = v.comps[i] + sign*oc[i]
	}

	return newVectorOwned(out), nil
}

// scale returns k*v. Complexity: O(n).
func (v Vector[T]) scale(k T) Vector[T] {
	out := make([]T, len(v.comps))
	for i, c := range v.comps {
		out[i] = k * c
	}

	return newVectorOwned(out)
}

// hadamard returns the componentwise product v ⊙ o.
// Errors: ErrTypeMismatch (nil o), ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector[T]) hadamard(o VectorLike[T], opTag string) (Vector[T], error) {
	if err := ValidateSameDim(v, o); err != nil {
		return Vector[T]{}, linalgErrorf(opTag, err)
	}
	oc := o.base().comps
	out := make([]T, len(v.comps))
	for i := range v.comps {
		out[i] = v.comps[i] * oc[i]
	}

	return newVectorOwned(out), nil
}

// Add returns v + o componentwise.
//
// Errors:
//   - ErrTypeMismatch (nil o), ErrDimensionMismatch (differing Dim).
func (v Vector[T]) Add(o VectorLike[T]) (Vector[T], error) { return v.addSub(o, 1, opVecAdd) }

// Sub returns v - o componentwise.
//
// Errors:
//   - ErrTypeMismatch (nil o), ErrDimensionMismatch (differing Dim).
func (v Vector[T]) Sub(o VectorLike[T]) (Vector[T], error) { return v.addSub(o, -1, opVecSub) }

// Neg returns -v; it equals v.Scale(-1).
func (v Vector[T]) Neg() Vector[T] { return v.scale(-1) }

// Pos returns a fresh copy of v (unary plus).
func (v Vector[T]) Pos() Vector[T] { return v.scale(1) }

// Scale returns k*v.
func (v Vector[T]) Scale(k T) Vector[T] { return v.scale(k) }

// Mul dispatches on the operand kind:
//   - scalar: componentwise scaling;
//   - vector: componentwise (Hadamard) product of aligned positions;
//   - anything else (matrix, nil): ErrTypeMismatch.
//
// The vector case returns a vector, not a reduced sum; use Dot for Σ aᵢbᵢ.
//
// Errors:
//   - ErrTypeMismatch, ErrDimensionMismatch (vector operand of differing Dim).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v Vector[T]) Mul(o Operand[T]) (Vector[T], error) {
	switch x := o.(type) {
	case Scalar[T]:
		return v.scale(x.v), nil
	case VectorLike[T]:
		return v.hadamard(x, opVecMul)
	default:
		return Vector[T]{}, linalgErrorf(opVecMul, ErrTypeMismatch)
	}
}

// Div returns v * (1/k) for a scalar operand k.
//
// Errors:
//   - ErrArithmetic (vector or matrix divisor), ErrDivisionByZero (k == 0),
//     ErrTypeMismatch (nil operand).
func (v Vector[T]) Div(o Operand[T]) (Vector[T], error) {
	k, err := scalarDivisor(o)
	if err != nil {
		return Vector[T]{}, linalgErrorf(opVecDiv, err)
	}

	return v.scale(1 / k), nil
}

// Dot returns the reduced dot product Σ vᵢ·oᵢ (no conjugation).
//
// Errors:
//   - ErrTypeMismatch (nil o), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v Vector[T]) Dot(o VectorLike[T]) (T, error) {
	var acc T
	if err := ValidateSameDim(v, o); err != nil {
		return acc, linalgErrorf(opVecDot, err)
	}
	oc := o.base().comps
	for i := range v.comps {
		acc += v.comps[i] * oc[i]
	}

	return acc, nil
}

// scalarDivisor extracts a non-zero scalar divisor from o.
// Shared by Vector.Div and Matrix.Div so both report the same sentinels.
//
// Errors:
//   - ErrTypeMismatch (nil), ErrArithmetic (vector/matrix), ErrDivisionByZero.
func scalarDivisor[T Number](o Operand[T]) (T, error) {
	var zero T
	if o == nil {
		return zero, ErrTypeMismatch
	}
	s, ok := o.(Scalar[T])
	if !ok {
		return zero, ErrArithmetic
	}
	if s.v == 0 {
		return zero, ErrDivisionByZero
	}

	return s.v, nil
}
