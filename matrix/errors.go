// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for invalid Option
// parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Kernels wrap with their operation tag via matrixErrorf, so a
// failure reads "Inverse: zero pivot at row 0: matrix: singular matrix" and
// still matches errors.Is(err, ErrSingular).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty -> shape (non-square / dimension mismatch) -> numeric (singular).

var (
	// ErrEmptyMatrix is returned when a matrix has zero rows or a zero-length row.
	// Empty matrices are invalid for every arithmetic operation.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, or a ragged
	// row set that breaks the rectangularity invariant.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during
	// Gauss-Jordan elimination with no row-swap recovery available.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a requested shape has a negative dimension
	// or more cells than an int can count.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (ingestion under WithNaNInfCheck, tolerances passed to AllClose).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
