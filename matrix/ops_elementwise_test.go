// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaussmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestAllClose_Tolerances checks the |a-b| <= atol + rtol*|b| relation.
func TestAllClose_Tolerances(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 100}})
	b := MustRows(t, [][]float64{{1.001, 100.5}})

	tests := []struct {
		name       string
		rtol, atol float64
		want       bool
	}{
		{"exact only", 0, 0, false},
		{"atol covers both", 0, 0.5, true},
		{"atol too small", 0, 0.01, false},
		{"rtol covers both", 0.01, 0, true},
		{"negative normalized", -0.01, -0.001, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matrix.AllClose(a, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}

	ok, err := matrix.AllClose(a, a, 0, 0)
	require.NoError(t, err)
	require.True(t, ok, "a matrix is close to itself")
}

// TestAllClose_Errors covers tolerance and operand validation.
func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)

	_, err := matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose[float64](a, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose[float64](nil, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose[float64](a, shapeOnly{2, 2}, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAllClose_NaNCells ensures NaN never compares close, even to itself.
func TestAllClose_NaNCells(t *testing.T) {
	t.Parallel()

	n := MustRows(t, [][]float64{{math.NaN()}})
	ok, err := matrix.AllClose(n, n, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestAllClose_Fallback compares through the interface path.
func TestAllClose_Fallback(t *testing.T) {
	t.Parallel()

	a := RandDense[float32](t, 3, 3, 7)
	b, err := matrix.Scale(a, float32(1))
	require.NoError(t, err)

	ok, err := matrix.AllClose[float32](hide[float32]{a}, b, rtol32, atol32)
	require.NoError(t, err)
	require.True(t, ok)

	MustSet(t, b, 2, 2, MustAt[float32](t, b, 2, 2)+1)
	ok, err = matrix.AllClose[float32](hide[float32]{a}, b, rtol32, atol32)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestEqual covers shape, value and nil handling on both paths.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustRows(t, fixtureA)
	b := MustRows(t, fixtureA)
	var typedNil *matrix.Dense[float64]

	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal[float64](hide[float64]{a}, b))
	require.False(t, matrix.Equal[float64](a, MustDense(t, 2, 2)))
	require.False(t, matrix.Equal[float64](a, MustRows(t, [][]float64{{1, 2, 3, 4}})))
	require.False(t, matrix.Equal[float64](a, nil))
	require.False(t, matrix.Equal[float64](typedNil, a))
	require.False(t, matrix.Equal[float64](shapeOnly{1, 1}, shapeOnly{1, 1}), "accessor failure is unequal")
}
