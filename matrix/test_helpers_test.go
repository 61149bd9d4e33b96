// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep random data seeded so every failure is reproducible.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gaussmat/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances shared by float64 and float32 round-trip checks.
const (
	rtol64 = 1e-9
	atol64 = 1e-9
	rtol32 = 1e-4
	atol32 = 1e-4
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide[T]{X} to force the non-*Dense (fallback) path in code under test.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide[T matrix.Float] struct{ matrix.Matrix[T] }

// shapeOnly reports a shape but owns no cells: every At/Set fails.
// It models foreign Matrix implementations (empty ones included) that the
// *Dense constructors would never produce.
type shapeOnly struct{ r, c int }

func (s shapeOnly) Rows() int { return s.r }
func (s shapeOnly) Cols() int { return s.c }
func (s shapeOnly) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (s shapeOnly) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (s shapeOnly) Clone() matrix.Matrix[float64] { return s }

// MustDense ALLOCATES an r×c *Dense[float64] or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from a row set or fails the test.
func MustRows[T matrix.Float](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T matrix.Float](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet[T matrix.Float](t testing.TB, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// CompareExact ASSERTS m equals want cell by cell under ==.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact[T matrix.Float](t testing.TB, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose[T matrix.Float](t testing.TB, a, b matrix.Matrix[T], rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "AllClose=false (rtol=%g, atol=%g)\n got:\n%v\nwant:\n%v", rtol, atol, a, b)
}

// RandDense RETURNS an r×c matrix with cells uniform in [-1, 1), seeded.
func RandDense[T matrix.Float](t testing.TB, r, c int, seed int64) *matrix.Dense[T] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, T(2*rng.Float64()-1))
		}
	}

	return m
}

// DiagDominant RETURNS a strictly diagonally dominant n×n matrix.
// Every leading pivot of naive Gauss-Jordan is nonzero for such matrices,
// so PivotNone inverts them without a row exchange.
func DiagDominant[T matrix.Float](t testing.TB, n int, seed int64) *matrix.Dense[T] {
	t.Helper()
	m := RandDense[T](t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, T(n+1)+MustAt[T](t, m, i, i))
	}

	return m
}
