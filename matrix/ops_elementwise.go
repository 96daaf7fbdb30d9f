// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise operations on Matrix values: Add, Sub, Scale, Transpose.
//   - Share one sign-parameterized kernel (addSub) so Add and Sub cannot
//     drift apart in validation or loop order.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→j for Transpose).
//   - One allocation per result; operands are never mutated.
//   - O(r*c) time and space for every operation here.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
)

// addSub computes out = m + sign*o element-wise for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the loop.
// Stage 1 (Validate): non-nil operand, identical shapes.
// Stage 2 (Execute): single flat loop over row-major storage.
// Complexity: O(r*c).
func (m *Matrix) addSub(o *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newZero(m.rows, m.cols)
	for idx := range m.data { // deterministic 0..n-1
		res.data[idx] = m.data[idx] + sign*o.data[idx]
	}

	return res, nil
}

// Add returns the element-wise sum m + o as a fresh Matrix.
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape
// mismatch; the message names both shapes).
// Complexity: O(r*c).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return m.addSub(o, +1, opAdd) }

// Sub returns the element-wise difference m - o as a fresh Matrix.
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape
// mismatch; the message names both shapes).
// Complexity: O(r*c).
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return m.addSub(o, -1, opSub) }

// Scale returns a fresh Matrix with every element multiplied by k.
// Total (never fails); scalar-on-left and scalar-on-right are the same
// operation here, so commutativity holds by construction.
// Complexity: O(r*c).
func (m *Matrix) Scale(k float64) *Matrix {
	res := newZero(m.rows, m.cols)
	for idx := range m.data {
		res.data[idx] = m.data[idx] * k
	}

	return res
}

// Transpose returns a fresh (cols×rows) Matrix with out[i][j] = m[j][i].
// Total: always succeeds for a valid Matrix.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	res := newZero(m.cols, m.rows)
	var i, j int // loop iterators (deterministic i→j order)
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			res.data[j*res.cols+i] = m.data[i*m.cols+j]
		}
	}

	return res
}
