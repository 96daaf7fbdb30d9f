// SPDX-License-Identifier: MIT

// Package matrix - immutable dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead
//     of panicking.
//   - Guarantee immutability: storage is copied in at construction, copied
//     out by accessors, and never exposed by reference.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; Rows/Cols/At: O(1); Row: O(c); Grid/String/Equal:
//     O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// Formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]"
	fmtSep      = ", "
)

// Matrix is an immutable row-major matrix of float64 values.
// rows and cols are the dimensions; data holds rows*cols elements in
// row-major order. The zero value is not usable; construct via New,
// NewIdentity or an operation result.
type Matrix struct {
	rows, cols int       // dimensions, fixed at construction
	data       []float64 // flat backing storage, length == rows*cols
}

// matrixErrorf wraps err with an operation tag, preserving the sentinel via
// %w so callers can still match with errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// New constructs a Matrix from a non-empty rectangular grid of values.
// Stage 1 (Validate): at least one row, all rows of equal length.
// Stage 2 (Copy): flatten the grid into owned storage; the caller's slices
// are never aliased, so later mutation of grid cannot affect the Matrix.
// Errors: ErrBadShape on an empty or ragged grid.
// Complexity: O(r*c) time and memory.
func New(grid [][]float64) (*Matrix, error) {
	// Validate before any allocation.
	if err := validateGrid(grid); err != nil {
		return nil, matrixErrorf("New", err)
	}

	rows, cols := len(grid), len(grid[0])
	data := make([]float64, 0, rows*cols)
	for _, row := range grid {
		data = append(data, row...) // row-major flatten, fixed order
	}

	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// newZero allocates a rows×cols zero matrix. Internal constructor for
// operation results; callers guarantee rows >= 1 and cols >= 0.
func newZero(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// indexOf computes the flat index for (row, col) or reports the offending
// index and its valid range. Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, fmt.Errorf("row %d out of bounds [0,%d): %w", row, m.rows, ErrOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return 0, fmt.Errorf("col %d out of bounds [0,%d): %w", col, m.cols, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at zero-based (row, col).
// Errors: ErrOutOfRange if either index is outside its valid range.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf("At", err)
	}

	return m.data[idx], nil
}

// Row returns a copy of row i. Mutating the returned slice does not affect
// the Matrix.
// Errors: ErrOutOfRange on a bad index.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf("Row", fmt.Errorf("row %d out of bounds [0,%d): %w", i, m.rows, ErrOutOfRange))
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// Grid returns a deep copy of the full grid in row-major order, convenient
// for display and diffing in tests. Never aliases internal storage.
// Complexity: O(r*c).
func (m *Matrix) Grid() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]float64, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// Equal reports exact element-wise equality. A nil argument or a shape
// mismatch is unequal, never an error. Complexity: O(r*c).
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for demo/debug output. The form is
// "Matrix(RxC):" followed by one line per row; it is display-oriented and
// not a parseable format.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d):", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		b.WriteString("\n")
		b.WriteString(fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(fmtSep)
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
