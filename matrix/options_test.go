// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the numeric-policy options
// and approximate equality.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typedlabs/typedstart/matrix"
)

func TestEqualApprox_DefaultEpsilon(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	within := MustNew(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})
	outside := MustNew(t, [][]float64{{1 + 1e-6, 2}, {3, 4}})

	require.True(t, a.EqualApprox(within))
	require.False(t, a.EqualApprox(outside))

	// Exact equality stays strict on the same data.
	require.False(t, a.Equal(within))
}

func TestEqualApprox_WithEpsilon(t *testing.T) {
	a := MustNew(t, [][]float64{{1}})
	b := MustNew(t, [][]float64{{1.05}})

	require.False(t, a.EqualApprox(b))
	require.True(t, a.EqualApprox(b, matrix.WithEpsilon(0.1)))

	// eps=0 degenerates to exact comparison.
	require.False(t, a.EqualApprox(b, matrix.WithEpsilon(0)))
	same := MustNew(t, [][]float64{{1}})
	require.True(t, a.EqualApprox(same, matrix.WithEpsilon(0)))
}

func TestEqualApprox_ShapeAndNil(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}})
	b := MustNew(t, [][]float64{{1}, {2}})

	require.False(t, a.EqualApprox(b))
	require.False(t, a.EqualApprox(nil))
}

func TestEqualApprox_NaNNeverEqual(t *testing.T) {
	a := MustNew(t, [][]float64{{math.NaN()}})
	b := MustNew(t, [][]float64{{math.NaN()}})

	require.False(t, a.EqualApprox(b, matrix.WithEpsilon(math.Inf(1))))
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1e-9) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
