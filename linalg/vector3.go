// SPDX-License-Identifier: MIT

package linalg

const (
	opCross    = "Vector3.Cross"
	ctxVector3 = "Vector3"
)

// Vector3 is a three-dimensional Vector with X/Y/Z accessors and the cross product.
// Like Vector2 it embeds Vector and shadows arithmetic to keep the subtype.
type Vector3[T Number] struct {
	Vector[T]
}

// NewVector3 builds the vector (x, y, z).
func NewVector3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{newVectorOwned([]T{x, y, z})}
}

// X returns the first component.
func (v Vector3[T]) X() T { return v.comp(0) }

// Y returns the second component.
func (v Vector3[T]) Y() T { return v.comp(1) }

// Z returns the third component.
func (v Vector3[T]) Z() T { return v.comp(2) }

// Add returns v + o, see Vector.Add.
func (v Vector3[T]) Add(o VectorLike[T]) (Vector3[T], error) {
	return wrap3[T](v.Vector.Add(o))
}

// Sub returns v - o, see Vector.Sub.
func (v Vector3[T]) Sub(o VectorLike[T]) (Vector3[T], error) {
	return wrap3[T](v.Vector.Sub(o))
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] { return Vector3[T]{v.Vector.Neg()} }

// Pos returns a fresh copy of v.
func (v Vector3[T]) Pos() Vector3[T] { return Vector3[T]{v.Vector.Pos()} }

// Scale returns k*v.
func (v Vector3[T]) Scale(k T) Vector3[T] { return Vector3[T]{v.Vector.Scale(k)} }

// Mul dispatches on the operand kind, see Vector.Mul.
func (v Vector3[T]) Mul(o Operand[T]) (Vector3[T], error) {
	return wrap3[T](v.Vector.Mul(o))
}

// Div divides by a scalar, see Vector.Div.
func (v Vector3[T]) Div(o Operand[T]) (Vector3[T], error) {
	return wrap3[T](v.Vector.Div(o))
}

// Cross returns v × o = (y1*z2 − z1*y2, z1*x2 − x1*z2, x1*y2 − y1*x2).
// The product anti-commutes: a.Cross(b) == b.Cross(a).Neg().
//
// Errors:
//   - ErrTypeMismatch when o is nil or not 3-dimensional.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v Vector3[T]) Cross(o VectorLike[T]) (Vector3[T], error) {
	if err := ValidateVectorDim(o, 3); err != nil {
		return Vector3[T]{}, linalgErrorf(opCross, err)
	}
	w := o.base()
	x1, y1, z1 := v.X(), v.Y(), v.Z()
	x2, y2, z2 := w.comps[0], w.comps[1], w.comps[2]

	return NewVector3(
		y1*z2-z1*y2,
		z1*x2-x1*z2,
		x1*y2-y1*x2,
	), nil
}

// String renders the vector as Vector3(x, y, z).
func (v Vector3[T]) String() string { return formatVector(ctxVector3, v.comps) }

// wrap3 re-tags a 3-D kernel result; kernels preserve the receiver's Dim.
func wrap3[T Number](r Vector[T], err error) (Vector3[T], error) {
	if err != nil {
		return Vector3[T]{}, err
	}

	return Vector3[T]{r}, nil
}
