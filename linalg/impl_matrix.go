// SPDX-License-Identifier: MIT
// Package linalg - matrix arithmetic kernels.
//
// Purpose:
//   - Element-wise Add/Sub, negation, scaling, scalar Div.
//   - Three-way Mul dispatch on the operand kind, checked in this priority:
//     scalar → vector → matrix → ErrTypeMismatch.
//   - Transpose (materialized column view).
//
// Notes:
//   - All kernels use the central validators and wrap with an op* tag.
//   - One allocation per result; receivers and operands are never written.

package linalg

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Matrix.Add"
	opSub       = "Matrix.Sub"
	opMul       = "Matrix.Mul"
	opMatVec    = "Matrix.MulVec"
	opMatMul    = "Matrix.MulMat"
	opDiv       = "Matrix.Div"
	opTranspose = "Matrix.Transpose"
)

// addSub computes elementwise out = m + sign*o for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(m, o).
//   - Stage 2: single flat loop 0..n-1 over both row-major buffers.
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrTypeMismatch (nil o), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) addSub(o *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, linalgErrorf(opTag, err)
	}
	out := make([]T, len(m.data))
	for idx := range m.data { // deterministic 0..n-1
		out[idx] = m.data[idx] + sign*o.data[idx]
	}

	return newMatrixOwned(m.r, m.c, out), nil
}

// scale returns k*m. Complexity: O(r*c).
func (m *Matrix[T]) scale(k T) *Matrix[T] {
	out := make([]T, len(m.data))
	for idx, v := range m.data {
		out[idx] = k * v
	}

	return newMatrixOwned(m.r, m.c, out)
}

// Add computes the element-wise sum m + o as a fresh Matrix.
//
// Errors:
//   - ErrNilMatrix, ErrTypeMismatch (nil o), ErrDimensionMismatch (Dim differs).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, 1, opAdd) }

// Sub computes the element-wise difference m - o as a fresh Matrix.
//
// Errors:
//   - ErrNilMatrix, ErrTypeMismatch (nil o), ErrDimensionMismatch (Dim differs).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, -1, opSub) }

// Neg returns -m; it equals m.Scale(-1). A nil receiver yields nil.
func (m *Matrix[T]) Neg() *Matrix[T] {
	if m == nil {
		return nil
	}

	return m.scale(-1)
}

// Pos returns a fresh copy of m (unary plus). A nil receiver yields nil.
func (m *Matrix[T]) Pos() *Matrix[T] {
	if m == nil {
		return nil
	}

	return m.scale(1)
}

// Scale returns k*m. A nil receiver yields nil.
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	if m == nil {
		return nil
	}

	return m.scale(k)
}

// Mul multiplies m by a scalar, a vector or a matrix.
// Implementation (dispatch priority):
//   - Stage 1: scalar → every entry scaled; returns *Matrix[T].
//   - Stage 2: vector → standard matrix-vector product (see MulVec); the result
//     keeps the operand's subtype (Vector2 in → Vector2 out) whenever the
//     result dimension allows it, otherwise it is a plain Vector.
//   - Stage 3: matrix → product with an operand of identical Dim (see MulMat).
//   - Stage 4: anything else → ErrTypeMismatch.
//
// Errors:
//   - ErrNilMatrix, ErrTypeMismatch, ErrDimensionMismatch.
func (m *Matrix[T]) Mul(o Operand[T]) (Operand[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	switch x := o.(type) {
	case Scalar[T]:
		return m.scale(x.v), nil
	case VectorLike[T]:
		r, err := m.MulVec(x)
		if err != nil {
			return nil, linalgErrorf(opMul, err)
		}

		return rewrapLike(x, r), nil
	case *Matrix[T]:
		r, err := m.MulMat(x)
		if err != nil {
			return nil, linalgErrorf(opMul, err)
		}

		return r, nil
	default:
		return nil, linalgErrorf(opMul, ErrTypeMismatch)
	}
}

// MulVec computes y = m · v where yᵢ = Σⱼ m[i][j]·vⱼ.
//
// Contract: v.Dim() == m.Cols().
// Errors: ErrNilMatrix, ErrTypeMismatch (nil v), ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func (m *Matrix[T]) MulVec(v VectorLike[T]) (Vector[T], error) {
	if err := ValidateMatVec(m, v); err != nil {
		return Vector[T]{}, linalgErrorf(opMatVec, err)
	}
	x := v.base().comps
	y := make([]T, m.r)
	var i, j, base int
	var acc T
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return newVectorOwned(y), nil
}

// MulMat computes C = m × o with C[i][j] = Σ_k m[i][k]·o[k][j].
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, o): o must have m's Dim, and that Dim square.
//   - Stage 2: fixed i→j→k triple loop.
//
// Errors:
//   - ErrNilMatrix, ErrTypeMismatch (nil o), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c*c), Space O(r*c).
//
// Notes:
//   - Equal shapes are required, not the general m.Cols == o.Rows rule.
func (m *Matrix[T]) MulMat(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, linalgErrorf(opMatMul, err)
	}
	out := make([]T, m.r*o.c)
	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < o.c; j++ {
			acc = 0
			for k = 0; k < m.c; k++ {
				acc += m.data[i*m.c+k] * o.data[k*o.c+j]
			}
			out[i*o.c+j] = acc
		}
	}

	return newMatrixOwned(m.r, o.c, out), nil
}

// Div returns m * (1/k) for a scalar operand k.
//
// Errors:
//   - ErrNilMatrix, ErrArithmetic (vector or matrix divisor),
//     ErrDivisionByZero (k == 0), ErrTypeMismatch (nil operand).
func (m *Matrix[T]) Div(o Operand[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opDiv, err)
	}
	k, err := scalarDivisor(o)
	if err != nil {
		return nil, linalgErrorf(opDiv, err)
	}

	return m.scale(1 / k), nil
}

// Transpose returns mᵀ: the column view materialized as rows.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}
	out := make([]T, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return newMatrixOwned(m.c, m.r, out), nil
}

// rewrapLike returns r with the subtype of like when the dimensions agree.
func rewrapLike[T Number](like VectorLike[T], r Vector[T]) VectorLike[T] {
	switch like.(type) {
	case Vector2[T]:
		if r.Dim() == 2 {
			return Vector2[T]{r}
		}
	case Vector3[T]:
		if r.Dim() == 3 {
			return Vector3[T]{r}
		}
	}

	return r
}
