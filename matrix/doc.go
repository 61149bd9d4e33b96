// SPDX-License-Identifier: MIT

// Package matrix offers small dense-matrix arithmetic with Gauss-Jordan inversion.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix generic over float32 and float64 (Float),
//     with bounds-checked At/Set and an opt-in NaN/Inf ingestion guard.
//   - Elementary kernels: Add, Sub, Mul, Scale, Transpose.
//   - Inverse, a Gauss-Jordan inversion over the augmented matrix [A | I].
//     The default pivot rule never exchanges rows, so a zero diagonal entry at
//     any elimination step yields ErrSingular; WithPivoting(PivotPartial) opts
//     into partial pivoting.
//   - Row-slice facades (AddRows, MulRows, InverseRows, ...) for callers that
//     hold [][]T, validated against the rectangularity invariant.
//
// Every operation is a pure function: operands are never mutated, results are
// freshly allocated, and failures are reported as sentinel errors
// (ErrEmptyMatrix, ErrDimensionMismatch, ErrNotSquare, ErrSingular, ...)
// matched with errors.Is. There is no package state, so disjoint matrices may
// be processed from any number of goroutines.
//
// The package targets small workloads such as embedded control loops; kernels
// are plain O(n³) loops with no blocking or vectorization.
package matrix
