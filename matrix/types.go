// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and kernels.
// This file contains ONLY the element constraint and the public Matrix
// interface. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

// Float is the precision parameter of every matrix in this package.
// Single and double precision share one implementation; named types whose
// underlying type is float32 or float64 are accepted as well.
type Float interface {
	~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Kernels accept any Matrix and return *Dense. Passing *Dense operands unlocks
// flat-slice fast paths; other implementations go through At/Set in a fixed
// i→j order with identical results.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Float] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[T]
}
