// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan inversion.
//
// Purpose:
//   - Invert a square matrix by row-reducing the augmented matrix [A | I] to [I | A⁻¹].
//   - Keep the naive, diagonal-only pivot rule as the default, and offer partial
//     pivoting as an explicitly selected strategy (see options.go).
//
// Numeric policy:
//   - All arithmetic runs in T; there is no scaling or conditioning step.
//   - A pivot is zero when |pivot| <= tolerance. With the default tolerance of 0
//     this is the exact comparison pivot == 0 (negative zero included).
//   - A NaN pivot is not reported as singular (NaN <= tol is false); it
//     propagates into the result like any other IEEE 754 operation.
//     PivotPartial only keeps a NaN pivot when no row below offers a number.
//
// Complexity quicksheet:
//   - Time O(n³), Space O(n²): one n×2n working buffer plus the n×n result.

package matrix

import "fmt"

// augmentedWidthFactor is the column multiplier of the working buffer [A | I].
const augmentedWidthFactor = 2

// Inverse computes A⁻¹ by Gauss-Jordan elimination and returns a fresh Dense.
// Implementation:
//   - Stage 1: ValidateSquareOperand(m): non-nil, non-empty, square.
//   - Stage 2: Build the augmented n×2n buffer: left = copy of A, right = I_n.
//   - Stage 3: For each pivot row i = 0..n−1 (see gaussJordan):
//     select the pivot (in place, or by row exchange under PivotPartial),
//     fail on a zero pivot, normalise row i by the pivot, and eliminate
//     column i from every other row.
//   - Stage 4: Copy the right half out as the n×n result.
//
// Behavior highlights:
//   - Default strategy never swaps rows: any matrix needing an exchange
//     (e.g. [[0,1],[1,0]]) is reported as singular even though it is invertible.
//   - Early abort on the first zero pivot; the input is never mutated and no
//     partial result is returned.
//
// Inputs:
//   - m: square matrix (any Matrix; *Dense avoids At calls while augmenting).
//   - opts: WithPivoting, WithPivotTolerance.
//
// Returns:
//   - *Dense[T]: the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNotSquare (Stage 1).
//   - ErrSingular wrapped with the failing pivot row (Stage 3).
//
// Determinism:
//   - Fixed pivot order 0..n−1 and fixed row/column loop orders; partial
//     pivoting breaks ties by the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Retrying a singular result is the caller's job (e.g. perturb the diagonal,
//     or re-run with WithPivoting(PivotPartial)).
//   - For near-singular inputs combine PivotPartial with a small WithPivotTolerance.
func Inverse[T Float](m Matrix[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareOperand(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	aug, err := augmentWithIdentity(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = gaussJordan(aug, n, o.pivoting, T(o.pivotTol)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Right half of [I | A⁻¹] is the inverse.
	width := augmentedWidthFactor * n
	res := newDense[T](n, n, DefaultValidateNaNInf)
	for i := 0; i < n; i++ {
		copy(res.data[i*n:(i+1)*n], aug[i*width+n:(i+1)*width])
	}

	return res, nil
}

// augmentWithIdentity builds the row-major n×2n buffer [A | I_n].
// Assumes m is square and non-empty.
func augmentWithIdentity[T Float](m Matrix[T]) ([]T, error) {
	n := m.Rows()
	width := augmentedWidthFactor * n
	aug := make([]T, n*width)

	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		for i = 0; i < n; i++ {
			copy(aug[i*width:i*width+n], dm.data[i*n:(i+1)*n])
			aug[i*width+n+i] = 1
		}

		return aug, nil
	}

	var (
		v   T
		err error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			aug[i*width+j] = v
		}
		aug[i*width+n+i] = 1
	}

	return aug, nil
}

// gaussJordan reduces the augmented buffer [A | I] in place to [I | A⁻¹].
// Implementation (per pivot row i):
//   - Stage 1: under PivotPartial, swap row i with the row r ≥ i holding the
//     largest |aug[r][i]|; under PivotNone keep row i.
//   - Stage 2: diag = aug[i][i]; |diag| <= tol → ErrSingular.
//   - Stage 3: divide all 2n entries of row i by diag (captured before the loop).
//   - Stage 4: for every k ≠ i, subtract aug[k][i]·row i from row k.
//
// Errors:
//   - ErrSingular wrapped with the pivot row index.
//
// Complexity:
//   - Time O(n³), Space O(1) beyond aug.
func gaussJordan[T Float](aug []T, n int, strategy PivotStrategy, tol T) error {
	width := augmentedWidthFactor * n
	var (
		i, j, k    int
		diag, fact T
		pivotRow   []T
		targetRow  []T
	)
	for i = 0; i < n; i++ {
		if strategy == PivotPartial {
			if p := pivotCandidate(aug, n, i); p != i {
				swapRows(aug, width, i, p)
			}
		}

		diag = aug[i*width+i]
		if abs(diag) <= tol {
			return fmt.Errorf("zero pivot at row %d: %w", i, ErrSingular)
		}

		// Normalise the pivot row so that aug[i][i] == 1.
		pivotRow = aug[i*width : (i+1)*width]
		for j = 0; j < width; j++ {
			pivotRow[j] /= diag
		}

		// Zero column i in every other row.
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			targetRow = aug[k*width : (k+1)*width]
			fact = targetRow[i]
			for j = 0; j < width; j++ {
				targetRow[j] -= fact * pivotRow[j]
			}
		}
	}

	return nil
}

// pivotCandidate returns the row r in [col, n) with the largest |aug[r][col]|.
// Ties keep the lowest index. NaN entries never win, the diagonal one included:
// a NaN diagonal is replaced by any non-NaN candidate below it. Row col is
// returned when the whole column is NaN.
func pivotCandidate[T Float](aug []T, n, col int) int {
	width := augmentedWidthFactor * n
	best, bestAbs := col, T(-1) // every non-NaN |x| beats the seed
	for r := col; r < n; r++ {
		if v := abs(aug[r*width+col]); v > bestAbs {
			best, bestAbs = r, v
		}
	}

	return best
}

// swapRows exchanges rows a and b of a row-major buffer in place.
func swapRows[T Float](buf []T, width, a, b int) {
	ra := buf[a*width : (a+1)*width]
	rb := buf[b*width : (b+1)*width]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// abs returns |x| in T. Negative zero maps to itself, which still compares <= 0.
func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
