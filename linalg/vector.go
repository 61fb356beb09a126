// SPDX-License-Identifier: MIT

// Package linalg - Vector storage & read-only accessors.
//
// Purpose:
//   - Hold an immutable, ordered tuple of scalars with its dimension and summary.
//   - Guarantee immutability at the public surface: constructors copy inputs,
//     Components returns a copy, no method writes into an existing instance.
//   - Keep safety: At returns ErrOutOfRange instead of panicking.
//
// Arithmetic lives in impl_vector.go; Vector2/Vector3 embed Vector and
// shadow the arithmetic methods so results keep the receiver's subtype.

package linalg

import (
	"iter"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewVector = "NewVector"
	ctxVectorAt  = "Vector.At"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// DefaultTolerance is a sensible absolute tolerance for ApproxEqual on
// float64 data of magnitude ~1.
const DefaultTolerance = 1e-9

// VectorLike is satisfied by Vector, Vector2 and Vector3 of the same element type.
// It is the "vector-capable" operand accepted by Add, Sub, Dot, Cross and casts.
type VectorLike[T Number] interface {
	Operand[T]

	// Dim returns the number of components.
	Dim() int

	// Components returns a copy of the components in order.
	Components() []T

	base() Vector[T]
}

// Vector is an immutable N-dimensional vector.
//   - comps holds the components in order; never written after construction.
//   - mean caches the arithmetic mean of comps (see Summary).
//
// The zero Vector has Dim 0; constructors never produce it.
type Vector[T Number] struct {
	comps []T // owned copy, len == Dim()
	mean  T   // arithmetic mean of comps
}

// Compile-time assertions for the vector family.
var (
	_ VectorLike[float64] = Vector[float64]{}
	_ VectorLike[float64] = Vector2[float64]{}
	_ VectorLike[float64] = Vector3[float64]{}
)

// NewVector builds a Vector from the given components.
// Implementation:
//   - Stage 1: reject an empty component list (ErrInvalidDimensions).
//   - Stage 2: copy components and compute the arithmetic mean once.
//
// Errors:
//   - ErrInvalidDimensions when no component is given.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector[T Number](components ...T) (Vector[T], error) {
	if len(components) == 0 {
		return Vector[T]{}, linalgErrorf(ctxNewVector, ErrInvalidDimensions)
	}
	cp := make([]T, len(components))
	copy(cp, components)

	return newVectorOwned(cp), nil
}

// VectorFromSlice builds a Vector from a slice; it is NewVector(s...).
func VectorFromSlice[T Number](s []T) (Vector[T], error) {
	return NewVector(s...)
}

// MustVector is NewVector that panics on error. Intended for literals.
func MustVector[T Number](components ...T) Vector[T] {
	v, err := NewVector(components...)
	if err != nil {
		panic(err)
	}

	return v
}

// newVectorOwned wraps comps without copying; caller hands over ownership.
// An empty comps yields the zero Vector.
func newVectorOwned[T Number](comps []T) Vector[T] {
	if len(comps) == 0 {
		return Vector[T]{}
	}
	var sum T
	for _, c := range comps {
		sum += c
	}

	return Vector[T]{comps: comps, mean: sum / fromFloat[T](float64(len(comps)))}
}

// Kind reports KindVector.
func (v Vector[T]) Kind() Kind { return KindVector }

func (v Vector[T]) operandOf(T) {}

func (v Vector[T]) base() Vector[T] { return v }

// Dim returns the number of components.
// Complexity: O(1).
func (v Vector[T]) Dim() int { return len(v.comps) }

// Len is Dim; it mirrors the length query of a sequence.
func (v Vector[T]) Len() int { return len(v.comps) }

// Summary returns the arithmetic mean of the components.
// This is not a geometric norm; use Norm for √Σ|x|².
func (v Vector[T]) Summary() T { return v.mean }

// Norm returns the Euclidean norm √Σ|xᵢ|² (modulus-based for complex types).
// Complexity: O(n).
func (v Vector[T]) Norm() float64 {
	var acc, a float64
	for _, c := range v.comps {
		a = abs(c)
		acc += a * a
	}

	return math.Sqrt(acc)
}

// At returns component i or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.comps) {
		var zero T
		return zero, linalgErrorf(ctxVectorAt, ErrOutOfRange)
	}

	return v.comps[i], nil
}

// comp returns component i, or zero past the end (zero-value safety for X/Y/Z).
func (v Vector[T]) comp(i int) T {
	if i < len(v.comps) {
		return v.comps[i]
	}
	var zero T

	return zero
}

// Components returns a copy of the components.
// Complexity: O(n).
func (v Vector[T]) Components() []T {
	cp := make([]T, len(v.comps))
	copy(cp, v.comps)

	return cp
}

// All iterates (index, component) pairs in order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range v.comps {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Equal reports whether o has the same dimension and identical components.
// The subtype of o is irrelevant: Vector(1,2) equals Vector2(1,2).
func (v Vector[T]) Equal(o VectorLike[T]) bool {
	if o == nil {
		return false
	}
	ob := o.base()
	if len(v.comps) != len(ob.comps) {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != ob.comps[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether o has the same dimension and every component
// differs by at most tol (absolute, modulus for complex types).
func (v Vector[T]) ApproxEqual(o VectorLike[T], tol float64) bool {
	if o == nil {
		return false
	}
	ob := o.base()
	if len(v.comps) != len(ob.comps) {
		return false
	}
	for i := range v.comps {
		if abs(v.comps[i]-ob.comps[i]) > tol {
			return false
		}
	}

	return true
}

// String renders the vector as Vector(c0, c1, ...).
func (v Vector[T]) String() string { return formatVector("Vector", v.comps) }

// formatVector writes name(c0, c1, ...) deterministically.
func formatVector[T Number](name string, comps []T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(_fmtOpen)
	for i, c := range comps {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatNumber(c))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
