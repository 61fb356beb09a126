// Package vecmat is a small, dependency-free toolkit for immutable vectors
// and matrices with dimension-checked arithmetic.
//
// What is vecmat?
//
//	A pure-Go library for the geometry and linear algebra that games,
//	simulations and plotting code reach for every day:
//		• Vectors of any dimension over float32, float64, complex64, complex128
//		• Vector2 with planar rotation, Vector3 with the cross product
//		• Matrices with Add/Sub and Mul by scalar, vector or matrix
//		• Shared identity matrices of sizes 2, 3 and 4
//
// Why choose vecmat?
//
//   - Immutable values: every operation returns a new value, so sharing
//     across goroutines needs no locks
//   - Typed failures: wrong kinds and wrong sizes come back as sentinel
//     errors (errors.Is), never panics
//   - Generic: one implementation for real and complex scalars
//
// Everything lives in one subpackage:
//
//	linalg/ - Vector, Vector2, Vector3, Matrix, Identity, validators & errors
//
// Quick example (rotate a point about a center):
//
//	p := linalg.NewVector2(2.0, 1.0)
//	c := linalg.NewVector2(1.0, 1.0)
//	q, _ := p.RotateAbout(math.Pi/2, c) // Vector2(1, 2)
//
// See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/vecmat/linalg
package vecmat
