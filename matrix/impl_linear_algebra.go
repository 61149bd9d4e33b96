// SPDX-License-Identifier: MIT
// Package matrix - elementary kernels.
//
// Purpose:
//   - Add, Sub, Mul, Scale and Transpose over any Matrix[T], each returning a
//     fresh *Dense[T].
//   - Fixed loop orders so single and double precision runs are reproducible.
//
// Notes:
//   - Gauss-Jordan inversion lives in impl_inverse.go.
//   - Every kernel validates through validators.go before allocating and tags
//     failures with its operation name (matrixErrorf).

package matrix

import "fmt"

// zeroSum is the initial accumulator value for dot products.
const zeroSum = 0.0

// Operation tags prefixed to every kernel error.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
)

// matrixErrorf prefixes err with an operation tag, e.g.
// "Inverse: zero pivot at row 0: matrix: singular matrix".
// errors.Is keeps matching the sentinel. Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf wraps an accessor failure observed by a kernel's generic fallback.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// addSub returns a + sign·b for sign = +1 (Add) or −1 (Sub).
// Multiplying by ±1 is exact, so Sub is bitwise a − b.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape, then one r×c allocation.
//   - Stage 2: two *Dense operands share a layout and are walked as flat
//     slices; anything else goes through At(i, j) row by row.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
//   - Accessor errors of a foreign Matrix (fallback only), tagged with (i, j).
func addSub[T Float](a, b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense[T](rows, cols, DefaultValidateNaNInf)

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv T
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns C[i,j] = A[i,j] + B[i,j] for operands of identical shape.
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Add[T Float](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub returns C[i,j] = A[i,j] − B[i,j]; same contract as Add.
func Sub[T Float](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (non-nil, non-empty) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Triple loop i→j→k with the k-loop innermost, accumulating each
//     C[i,j] in T. *Dense operands use row-major strides; others use At.
//
// Behavior highlights:
//   - Both paths sum the same products in the same order, so they agree bitwise.
//   - No blocking, no zero-skipping: 0·Inf still yields NaN as IEEE 754 requires.
//
// Shapes: (r × n) · (n × c) → (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Float](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense[T](aRows, bCols, DefaultValidateNaNInf)
	var (
		i, j, k int
		sum     T
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowA []T
			for i = 0; i < aRows; i++ {
				rowA = da.data[i*aCols : (i+1)*aCols]
				for j = 0; j < bCols; j++ {
					sum = zeroSum
					for k = 0; k < aCols; k++ {
						sum += rowA[k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k).
	var (
		av, bv T
		err    error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = zeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j] * s.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(r*c).
func Scale[T Float](m Matrix[T], s T) (*Dense[T], error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](rows, cols, DefaultValidateNaNInf)
	if dm, ok := m.(*Dense[T]); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * s
		}

		return res, nil
	}

	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = v * s
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh (c × r) Dense: C[j,i] = m[i,j].
// Source cells are read row by row on both paths.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix.
//   - Accessor errors of a foreign Matrix.
//
// AI-Hints:
//   - A row vector transposes into a column vector, the shape Mul expects
//     on the right of an n×n system matrix.
func Transpose[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](cols, rows, DefaultValidateNaNInf)

	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var (
		v   T
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
