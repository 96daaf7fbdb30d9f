// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT re-create these sentinels inline; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> squareness -> size.

var (
	// ErrBadShape is returned when a construction grid is invalid:
	// zero rows, or a row whose length differs from the first row's.
	// New must validate before allocating storage.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Det, Trace)
	// but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidSize indicates that a requested matrix size is non-positive
	// (NewIdentity with n < 1).
	ErrInvalidSize = errors.New("matrix: size must be >= 1")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed to a public entry point.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
