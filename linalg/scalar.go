// SPDX-License-Identifier: MIT
// Package linalg: numeric predicate & operand kinds.
//
// Purpose:
//   - Declare the closed Number constraint (real or complex scalars).
//   - Wrap scalars as operands so Mul/Div can dispatch on the right-hand side.
//   - Provide the sealed Operand interface and its capability tag (Kind).
//
// Design:
//   - Operand is sealed by an unexported method; only Scalar, Vector, Vector2,
//     Vector3 and *Matrix implement it, so dispatch switches are exhaustive.
//   - Number lists exact types (no ~), which keeps conversions from float64
//     resolvable by a closed switch in fromFloat.

package linalg

import (
	"math/cmplx"
	"strconv"
)

// Number is the set of scalar types usable as vector and matrix entries.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// Kind tags an operand with its capability: scalar, vector or matrix.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no operand reports it.
	KindInvalid Kind = iota
	// KindScalar marks Scalar operands.
	KindScalar
	// KindVector marks Vector, Vector2 and Vector3 operands.
	KindVector
	// KindMatrix marks *Matrix operands.
	KindMatrix
)

// String returns a lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kinded is anything reporting a capability tag. Every Operand is Kinded.
type Kinded interface {
	Kind() Kind
}

// Operand is the right-hand side of Mul and Div.
// It is implemented only by Scalar[T], Vector[T], Vector2[T], Vector3[T]
// and *Matrix[T] for the same T.
type Operand[T Number] interface {
	Kinded
	operandOf(T) // seal; also binds the element type
}

// Scalar wraps a Number as an Operand.
type Scalar[T Number] struct {
	v T
}

// Num wraps v as a scalar operand.
func Num[T Number](v T) Scalar[T] { return Scalar[T]{v: v} }

// Value returns the wrapped number.
func (s Scalar[T]) Value() T { return s.v }

// Kind reports KindScalar.
func (s Scalar[T]) Kind() Kind { return KindScalar }

func (s Scalar[T]) operandOf(T) {}

// String formats the wrapped number with %g.
func (s Scalar[T]) String() string { return formatNumber(s.v) }

// IsNumber reports whether op is a scalar operand. A nil op is not.
func IsNumber(op Kinded) bool { return op != nil && op.Kind() == KindScalar }

// IsVector reports whether op is a vector operand (Vector, Vector2 or Vector3).
func IsVector(op Kinded) bool { return op != nil && op.Kind() == KindVector }

// IsMatrix reports whether op is a matrix operand.
func IsMatrix(op Kinded) bool { return op != nil && op.Kind() == KindMatrix }

// fromFloat converts a real float64 into T (real part for complex types).
// Go forbids T(f) for a type set mixing real and complex types, hence the switch.
// Complexity: O(1).
func fromFloat[T Number](f float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	case *complex64:
		*p = complex(float32(f), 0)
	case *complex128:
		*p = complex(f, 0)
	}

	return z
}

// toComplex widens v to complex128 (zero imaginary part for real types).
// Complexity: O(1).
func toComplex[T Number](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}

	return 0
}

// abs returns |v| as float64 (modulus for complex types).
func abs[T Number](v T) float64 { return cmplx.Abs(toComplex(v)) }

// formatNumber renders v with %g; complex values keep Go's (re+imi) form.
func formatNumber[T Number](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case complex64:
		return strconv.FormatComplex(complex128(x), 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(x, 'g', -1, 128)
	}

	return "?"
}
