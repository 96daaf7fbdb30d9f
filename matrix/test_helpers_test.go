// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities shared
//     across the package's tests.
//   - Keep all data finite and well-formed unless a test exercises the
//     validation path on purpose.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typedlabs/typedstart/matrix"
)

// MustNew builds a Matrix from a grid or fails the test (fatal on error).
// Concise boilerplate reduction for tests that need valid fixtures.
func MustNew(t *testing.T, grid [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(grid)
	if err != nil {
		t.Fatalf("matrix.New(%v): %v", grid, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test. Keeps value assertions on one line.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts that m's grid equals want element-for-element;
// on mismatch it fails with a go-cmp diff, which pinpoints the first
// differing cell far better than a bare %v dump.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, m.Grid()); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}
