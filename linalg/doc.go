// Package linalg provides immutable vectors and matrices with dimension-checked
// arithmetic.
//
// The linalg package provides:
//
//   - Vector: an N-dimensional tuple of real or complex scalars with
//     componentwise Add/Sub, scalar and componentwise Mul, scalar Div, Dot.
//   - Vector2 / Vector3: geometric specializations with X/Y(/Z) accessors,
//     planar rotation (Vector2) and the cross product (Vector3).
//   - Matrix: a rectangular row-major grid with Add/Sub and a three-way Mul
//     (by scalar, by vector, by matrix).
//   - Identity: shared read-only identity matrices of sizes 2, 3 and 4.
//
// Every operation returns a new value; nothing is mutated after construction,
// so all values are safe for concurrent reads. Failures are reported through
// the sentinel errors in errors.go and should be matched with errors.Is:
//
//	ErrTypeMismatch      wrong operand kind (e.g. Vector.Mul by a Matrix)
//	ErrDimensionMismatch compatible kinds of incompatible size
//	ErrArithmetic        division by a vector or a matrix (and by zero)
//
// Right-hand operands of Mul and Div are Operand values: wrap plain numbers
// with Num.
//
//	v, _ := linalg.NewVector(1.0, 2.0, 3.0)
//	w, _ := v.Mul(linalg.Num(2.0)) // Vector(2, 4, 6)
//	y, _ := linalg.Identity.S3.MulVec(w)
package linalg
