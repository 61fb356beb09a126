// SPDX-License-Identifier: MIT

package linalg

import "math"

const (
	opRotate   = "Vector2.Rotate"
	ctxVector2 = "Vector2"
)

// Vector2 is a two-dimensional Vector with X/Y accessors and planar rotation.
// It embeds Vector for the read surface; arithmetic methods are shadowed so
// results stay Vector2. The zero Vector2 reads as (0, 0) through X/Y but
// has Dim 0; build values with NewVector2 or Vec2.
type Vector2[T Number] struct {
	Vector[T]
}

// NewVector2 builds the vector (x, y).
func NewVector2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{newVectorOwned([]T{x, y})}
}

// X returns the first component.
func (v Vector2[T]) X() T { return v.comp(0) }

// Y returns the second component.
func (v Vector2[T]) Y() T { return v.comp(1) }

// Complex maps (x, y) to x + y·i.
func (v Vector2[T]) Complex() complex128 {
	return toComplex(v.X()) + 1i*toComplex(v.Y())
}

// Add returns v + o, see Vector.Add.
func (v Vector2[T]) Add(o VectorLike[T]) (Vector2[T], error) {
	return wrap2[T](v.Vector.Add(o))
}

// Sub returns v - o, see Vector.Sub.
func (v Vector2[T]) Sub(o VectorLike[T]) (Vector2[T], error) {
	return wrap2[T](v.Vector.Sub(o))
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{v.Vector.Neg()} }

// Pos returns a fresh copy of v.
func (v Vector2[T]) Pos() Vector2[T] { return Vector2[T]{v.Vector.Pos()} }

// Scale returns k*v.
func (v Vector2[T]) Scale(k T) Vector2[T] { return Vector2[T]{v.Vector.Scale(k)} }

// Mul dispatches on the operand kind, see Vector.Mul.
func (v Vector2[T]) Mul(o Operand[T]) (Vector2[T], error) {
	return wrap2[T](v.Vector.Mul(o))
}

// Div divides by a scalar, see Vector.Div.
func (v Vector2[T]) Div(o Operand[T]) (Vector2[T], error) {
	return wrap2[T](v.Vector.Div(o))
}

// Rotate turns v counterclockwise by theta radians about the origin.
func (v Vector2[T]) Rotate(theta float64) Vector2[T] {
	r, _ := v.RotateAbout(theta, NewVector2[T](0, 0)) // origin is always 2-D

	return r
}

// RotateAbout turns v counterclockwise by theta radians about center.
// Implementation:
//   - Stage 1: center must be a 2-D vector (ErrTypeMismatch otherwise).
//   - Stage 2: translate by -center, apply [[cosθ, −sinθ], [sinθ, cosθ]], translate back.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v Vector2[T]) RotateAbout(theta float64, center VectorLike[T]) (Vector2[T], error) {
	if err := ValidateVectorDim(center, 2); err != nil {
		return Vector2[T]{}, linalgErrorf(opRotate, err)
	}
	translated, err := v.Vector.Sub(center)
	if err != nil {
		return Vector2[T]{}, linalgErrorf(opRotate, err)
	}
	rotated, err := rotation2[T](theta).MulVec(translated)
	if err != nil {
		return Vector2[T]{}, linalgErrorf(opRotate, err)
	}

	return wrap2[T](rotated.Add(center))
}

// rotation2 builds the 2×2 counterclockwise rotation matrix for theta.
func rotation2[T Number](theta float64) *Matrix[T] {
	c, s := fromFloat[T](math.Cos(theta)), fromFloat[T](math.Sin(theta))

	return newMatrixOwned(2, 2, []T{
		c, -s,
		s, c,
	})
}

// String renders the vector as Vector2(x, y).
func (v Vector2[T]) String() string { return formatVector(ctxVector2, v.comps) }

// wrap2 re-tags a 2-D kernel result; kernels preserve the receiver's Dim.
func wrap2[T Number](r Vector[T], err error) (Vector2[T], error) {
	if err != nil {
		return Vector2[T]{}, err
	}

	return Vector2[T]{r}, nil
}
