// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an immutable row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Derive the column view from the rows on demand; it is never stored separately.
//   - Reject every write: Set always fails with ErrImmutable.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) copy; At: O(1); Row/Col: O(c)/O(r); Transpose: O(r*c).

package linalg

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewMatrix = "NewMatrix"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxCol       = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
// Complexity: O(1).
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Dim is a matrix shape: (row count, column count). It is comparable.
type Dim struct {
	Rows, Cols int
}

// String renders the shape as "RxC".
func (d Dim) String() string { return strconv.Itoa(d.Rows) + "x" + strconv.Itoa(d.Cols) }

// Matrix is an immutable rectangular grid of scalars.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     never written after construction.
type Matrix[T Number] struct {
	r, c int // row and column counts (>0 for constructed values)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for operand & fmt.Stringer conformance.
var (
	_ Operand[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer     = (*Matrix[float64])(nil)
)

// NewMatrix creates a matrix from explicit rows.
// Implementation:
//   - Stage 1: validate at least one row and one column (ErrInvalidDimensions).
//   - Stage 2: validate every row has the first row's length (ErrBadShape).
//   - Stage 3: copy rows into a flat row-major buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix[T Number](rows ...[]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, linalgErrorf(ctxNewMatrix, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, linalgErrorf(ctxNewMatrix, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrBadShape))
		}
		buf = append(buf, row...)
	}

	return newMatrixOwned(r, c, buf), nil
}

// NewMatrixFromVectors creates a matrix whose rows are the given vectors.
//
// Errors:
//   - ErrInvalidDimensions (no rows), ErrTypeMismatch (nil row), ErrBadShape.
func NewMatrixFromVectors[T Number](rows ...VectorLike[T]) (*Matrix[T], error) {
	raw := make([][]T, len(rows))
	for i, v := range rows {
		if v == nil {
			return nil, linalgErrorf(ctxNewMatrix, fmt.Errorf("row %d: %w", i, ErrTypeMismatch))
		}
		raw[i] = v.base().comps // read-only; NewMatrix copies
	}

	return NewMatrix(raw...)
}

// MustMatrix is NewMatrix that panics on error. Intended for literals.
func MustMatrix[T Number](rows ...[]T) *Matrix[T] {
	m, err := NewMatrix(rows...)
	if err != nil {
		panic(err)
	}

	return m
}

// newMatrixOwned wraps data without copying; caller hands over ownership
// and guarantees len(data) == r*c.
func newMatrixOwned[T Number](r, c int, data []T) *Matrix[T] {
	return &Matrix[T]{r: r, c: c, data: data}
}

// Kind reports KindMatrix.
func (m *Matrix[T]) Kind() Kind { return KindMatrix }

func (m *Matrix[T]) operandOf(T) {}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Dim returns the (rows, cols) pair. Complexity: O(1).
func (m *Matrix[T]) Dim() Dim { return Dim{Rows: m.r, Cols: m.c} }

// Len returns the entry count rows*cols.
func (m *Matrix[T]) Len() int { return m.r * m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the entry at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set never stores anything: matrices are immutable after construction.
// It returns ErrImmutable for every (row, col), in range or not.
func (m *Matrix[T]) Set(row, col int, _ T) error {
	return matrixErrorf(ctxSet, row, col, ErrImmutable)
}

// Row returns row i as a Vector (a copy) or ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) (Vector[T], error) {
	if i < 0 || i >= m.r {
		return Vector[T]{}, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return newVectorOwned(out), nil
}

// Col returns column j as a Vector, recomputed from the rows, or ErrOutOfRange.
// Complexity: O(r).
func (m *Matrix[T]) Col(j int) (Vector[T], error) {
	if j < 0 || j >= m.c {
		return Vector[T]{}, matrixErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return newVectorOwned(out), nil
}

// RowVectors returns every row as a Vector, in order.
func (m *Matrix[T]) RowVectors() []Vector[T] {
	out := make([]Vector[T], m.r)
	for i := range out {
		out[i], _ = m.Row(i) // i is in range
	}

	return out
}

// ColVectors returns every column as a Vector, in order.
func (m *Matrix[T]) ColVectors() []Vector[T] {
	out := make([]Vector[T], m.c)
	for j := range out {
		out[j], _ = m.Col(j) // j is in range
	}

	return out
}

// ToSlices returns a deep copy of the rows as nested slices.
func (m *Matrix[T]) ToSlices() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// All iterates (index, row) pairs in order.
func (m *Matrix[T]) All() iter.Seq2[int, Vector[T]] {
	return func(yield func(int, Vector[T]) bool) {
		for i := 0; i < m.r; i++ {
			row, _ := m.Row(i)
			if !yield(i, row) {
				return
			}
		}
	}
}

// Equal reports whether o has the same Dim and identical entries.
// Two nil matrices are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether o has the same Dim and every entry differs by
// at most tol (absolute, modulus for complex types).
func (m *Matrix[T]) ApproxEqual(o *Matrix[T], tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if abs(m.data[idx]-o.data[idx]) > tol {
			return false
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatNumber(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
