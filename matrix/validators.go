// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape/squareness checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap once more with the operation name and still match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only validateGrid walks input
//    (O(rows)), the rest are O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Validators that assume non-nil input say so; callers must ensure it.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: *Matrix value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns: nil or wrapped ErrDimensionMismatch naming both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateInner ensures a and b are conformable for multiplication
// (a.Cols == b.Rows). The error message names both operand shapes, which is
// the detail most useful when debugging a mismatched chain of products.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateInner(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf(
			fmt.Sprintf("ValidateInner: %dx%d × %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: wrapped ErrNonSquare if rows != cols.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateSquare: %dx%d", m.rows, m.cols),
			ErrNonSquare,
		)
	}

	return nil
}

// validateGrid checks a construction grid: at least one row, and every row
// exactly as long as the first. Runs before any allocation in New.
// Complexity: O(rows).
func validateGrid(grid [][]float64) error {
	if len(grid) == 0 {
		return validatorErrorf("validateGrid: empty grid", ErrBadShape)
	}
	want := len(grid[0])
	for i, row := range grid {
		if len(row) != want {
			return validatorErrorf(
				fmt.Sprintf("validateGrid: row %d has %d elements, want %d", i, len(row), want),
				ErrBadShape,
			)
		}
	}

	return nil
}
