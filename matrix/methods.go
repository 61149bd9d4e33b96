// SPDX-License-Identifier: MIT
// Package matrix — row-slice facades.
//
// Purpose:
//   - Serve callers that hold matrices as [][]T (a slice of rows) rather than *Dense.
//   - Avoid any logic duplication: each facade validates through FromRows and
//     delegates to the canonical kernel, then materializes the result with ToRows.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Inputs are copied on ingestion; callers' slices are never retained or mutated.
//   - Results are fresh [][]T; a failed call returns nil and an error, never a
//     partially sized result.
//
// Complexity:
//   - Each facade adds O(r*c) ingestion and materialization copies on top of its kernel.

package matrix

// collectRows is the shared tail of every facade: propagate the kernel error
// or materialize the result.
func collectRows[T Float](m *Dense[T], err error) ([][]T, error) {
	if err != nil {
		return nil, err
	}

	return m.ToRows(), nil
}

// fromRowsPair ingests two row sets, tagging failures with the facade operation.
func fromRowsPair[T Float](tag string, a, b [][]T) (*Dense[T], *Dense[T], error) {
	da, err := FromRows(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := FromRows(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, db, nil
}

// AddRows returns a + b for row-slice operands.
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (ragged input or shape mismatch).
func AddRows[T Float](a, b [][]T) ([][]T, error) {
	da, db, err := fromRowsPair(opAdd, a, b)
	if err != nil {
		return nil, err
	}

	return collectRows[T](Add[T](da, db))
}

// SubRows returns a - b for row-slice operands.
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (ragged input or shape mismatch).
func SubRows[T Float](a, b [][]T) ([][]T, error) {
	da, db, err := fromRowsPair(opSub, a, b)
	if err != nil {
		return nil, err
	}

	return collectRows[T](Sub[T](da, db))
}

// MulRows returns the product a × b for row-slice operands.
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (ragged input or len(a[0]) != len(b)).
func MulRows[T Float](a, b [][]T) ([][]T, error) {
	da, db, err := fromRowsPair(opMul, a, b)
	if err != nil {
		return nil, err
	}

	return collectRows[T](Mul[T](da, db))
}

// ScaleRows returns a·s for a row-slice operand.
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (ragged input).
func ScaleRows[T Float](a [][]T, s T) ([][]T, error) {
	da, err := FromRows(a)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return collectRows[T](Scale[T](da, s))
}

// TransposeRows returns aᵀ for a row-slice operand.
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (ragged input).
func TransposeRows[T Float](a [][]T) ([][]T, error) {
	da, err := FromRows(a)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return collectRows[T](Transpose[T](da))
}

// InverseRows returns a⁻¹ for a row-slice operand; opts are forwarded to Inverse.
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (ragged input), ErrNotSquare, ErrSingular.
func InverseRows[T Float](a [][]T, opts ...Option) ([][]T, error) {
	da, err := FromRows(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return collectRows[T](Inverse[T](da, opts...))
}
