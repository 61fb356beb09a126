// SPDX-License-Identifier: MIT

package linalg

// IdentitySet holds the shared identity matrices of sizes 2, 3 and 4.
// The matrices are immutable, so concurrent reads need no locking.
type IdentitySet struct {
	S2, S3, S4 *Matrix[float64]
}

// Identity is built once at package init and is read-only shared data.
var Identity = IdentitySet{
	S2: mustIdentity[float64](2),
	S3: mustIdentity[float64](3),
	S4: mustIdentity[float64](4),
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2).
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	if n <= 0 {
		return nil, linalgErrorf("NewIdentity", ErrInvalidDimensions)
	}
	buf := make([]T, n*n) // zero-filled
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}

	return newMatrixOwned(n, n, buf), nil
}

func mustIdentity[T Number](n int) *Matrix[T] {
	m, err := NewIdentity[T](n)
	if err != nil {
		panic(err)
	}

	return m
}
