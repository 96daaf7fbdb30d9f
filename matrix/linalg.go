// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels: multiplication,
// identity construction, determinant and trace. All functions perform
// strict fail-fast validation and return clear errors on dimension
// mismatches; results are always freshly allocated.
//
// Notes:
//   - Mul uses the plain i→k→j triple loop over row-major storage. No
//     blocking, no Strassen: inputs are small and correctness over speed
//     is the contract here.
//   - Det uses recursive first-row cofactor (Laplace) expansion with no
//     pivoting. O(n!) is inherent to the method; see doc.go for why the
//     method itself is part of the contract.

package matrix

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opIdentity = "NewIdentity"
	opDet      = "Det"
	opTrace    = "Trace"
)

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): A, B non-nil and conformable (A.Cols == B.Rows);
// on mismatch the error names both shapes.
// Stage 2 (Execute): deterministic i→k→j loops over flat storage, so the
// inner loop walks both B's row and C's row contiguously.
// Result shape: (A.Rows × B.Cols), with
// C[i][j] = Σ over k of A[i][k] * B[k][j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows·inner·cols) time, O(rows·cols) space.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateInner(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newZero(a.rows, b.cols)
	var i, k, j int // loop iterators (deterministic i→k→j order)
	for i = 0; i < a.rows; i++ {
		for k = 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k] // one read per (i,k)
			if aik == 0 {
				continue // zero row entry contributes nothing
			}
			for j = 0; j < b.cols; j++ {
				res.data[i*res.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}

	return res, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere), the multiplicative identity for compatible matrices.
// Errors: ErrInvalidSize for n < 1.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, matrixErrorf(opIdentity, ErrInvalidSize)
	}

	res := newZero(n, n)
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		res.data[i*n+i] = 1.0
	}

	return res, nil
}

// Det computes the determinant of a square matrix via recursive first-row
// cofactor (Laplace) expansion:
//   - 1×1: the single element.
//   - 2×2: a*d - b*c.
//   - n≥3: Σ over col of (-1)^col * m[0][col] * Det(minor(m, col)),
//     where the minor deletes row 0 and column col.
//
// The expansion is preserved exactly (no pivoting, no elimination
// fallback) so results are bit-identical to the algebraic method; a
// singular integer matrix yields exactly 0.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) time. Suited to small matrices only.
func Det(m *Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(m), nil
}

// det is the recursive core of Det; m is known square and non-nil.
func det(m *Matrix) float64 {
	// Base case: 1×1.
	if m.rows == 1 {
		return m.data[0]
	}
	// Base case: 2×2.
	if m.rows == 2 {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	// Recursive case: expand along the first row with alternating signs.
	var d float64
	for col := 0; col < m.cols; col++ {
		cofactor := m.data[col] * det(minor(m, col))
		if col%2 == 0 {
			d += cofactor
		} else {
			d -= cofactor
		}
	}

	return d
}

// minor returns the (n-1)×(n-1) submatrix of a square m obtained by
// deleting row 0 and column col. Internal; m is known square with n >= 3
// and col valid, so no validation is repeated here.
// Complexity: O(n²).
func minor(m *Matrix, col int) *Matrix {
	res := newZero(m.rows-1, m.cols-1)
	idx := 0 // write cursor into the minor's flat storage
	var i, j int
	for i = 1; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if j == col {
				continue
			}
			res.data[idx] = m.data[i*m.cols+j]
			idx++
		}
	}

	return res
}

// Trace returns the sum of the diagonal elements m[i][i] of a square
// matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m *Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var sum float64
	for i := 0; i < m.rows; i++ {
		sum += m.data[i*m.cols+i]
	}

	return sum, nil
}
