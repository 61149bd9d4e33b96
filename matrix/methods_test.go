// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/gaussmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowsFacades_Fixture runs every facade on the 2x2 fixture.
func TestRowsFacades_Fixture(t *testing.T) {
	t.Parallel()

	got, err := matrix.AddRows(fixtureA, fixtureB)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, got)

	got, err = matrix.SubRows(fixtureB, fixtureA)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 4}, {4, 4}}, got)

	got, err = matrix.MulRows(fixtureA, fixtureB)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, got)

	got, err = matrix.ScaleRows(fixtureA, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 6}, {9, 12}}, got)

	got, err = matrix.TransposeRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}, {2}, {3}}, got)

	got, err = matrix.InverseRows(fixtureA)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2, 1}, {1.5, -0.5}}, got)
}

// TestRowsFacades_InputsUntouched ensures callers' slices are only read.
func TestRowsFacades_InputsUntouched(t *testing.T) {
	t.Parallel()

	a := [][]float64{{1, 2}, {3, 4}}
	got, err := matrix.ScaleRows(a, 10)
	require.NoError(t, err)
	got[0][0] = -1
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestRowsFacades_Errors covers ragged, empty and mismatched operands.
func TestRowsFacades_Errors(t *testing.T) {
	t.Parallel()

	ragged := [][]float64{{1, 2}, {3}}

	tests := []struct {
		name string
		call func() ([][]float64, error)
		want error
	}{
		{"add ragged", func() ([][]float64, error) { return matrix.AddRows(ragged, fixtureA) }, matrix.ErrDimensionMismatch},
		{"add shape", func() ([][]float64, error) { return matrix.AddRows(fixtureA, [][]float64{{1, 2}}) }, matrix.ErrDimensionMismatch},
		{"sub empty", func() ([][]float64, error) { return matrix.SubRows(fixtureA, nil) }, matrix.ErrEmptyMatrix},
		{"mul inner", func() ([][]float64, error) { return matrix.MulRows([][]float64{{1, 2, 3}}, fixtureA) }, matrix.ErrDimensionMismatch},
		{"mul ragged", func() ([][]float64, error) { return matrix.MulRows(fixtureA, ragged) }, matrix.ErrDimensionMismatch},
		{"scale empty", func() ([][]float64, error) { return matrix.ScaleRows([][]float64{{}}, 2) }, matrix.ErrEmptyMatrix},
		{"transpose ragged", func() ([][]float64, error) { return matrix.TransposeRows(ragged) }, matrix.ErrDimensionMismatch},
		{"inverse not square", func() ([][]float64, error) { return matrix.InverseRows([][]float64{{1, 2}}) }, matrix.ErrNotSquare},
		{"inverse singular", func() ([][]float64, error) { return matrix.InverseRows([][]float64{{0, 1}, {1, 0}}) }, matrix.ErrSingular},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.call()
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, got)
		})
	}
}

// TestInverseRows_ForwardsOptions checks that facade options reach the kernel.
func TestInverseRows_ForwardsOptions(t *testing.T) {
	t.Parallel()

	got, err := matrix.InverseRows([][]float64{{0, 1}, {1, 0}}, matrix.WithPivoting(matrix.PivotPartial))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, got)
}

// TestRowsFacades_ErrorTags verifies the facade names its operation.
func TestRowsFacades_ErrorTags(t *testing.T) {
	t.Parallel()

	_, err := matrix.MulRows([][]float64{{1}, {2, 3}}, fixtureA)
	require.ErrorContains(t, err, "Mul: FromRows: ValidateRectangular: row 1 has 2 columns, want 1")
}

// TestRowsFacades_InverseRoundTrip multiplies a row-slice inverse back onto its input.
func TestRowsFacades_InverseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{
		{{2, 1}, {1, 3}},
		{{4, -2, 1}, {-2, 4, -2}, {1, -2, 4}},
		{{0, 2, 1}, {1, 0, 0}, {3, 1, 5}}, // needs a row exchange
	} {
		inv, err := matrix.InverseRows(rows, matrix.WithPivoting(matrix.PivotPartial))
		require.NoError(t, err)
		prod, err := matrix.MulRows(rows, inv)
		require.NoError(t, err)

		id, err := matrix.Identity[float64](len(rows))
		require.NoError(t, err)
		if diff := cmp.Diff(id.ToRows(), prod, cmpopts.EquateApprox(rtol64, atol64)); diff != "" {
			t.Errorf("rows·InverseRows(rows) mismatch (-want +got):\n%s", diff)
		}
	}
}
