// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and facades minimal by delegating nil/empty/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Every check except ValidateRectangular runs in O(1).
//
// AI-Hints:
//  - Each kernel validates completely before it allocates, so a failed call
//    never leaves a partially written result behind.
//  - Use the composite validators (ValidateOperand, ValidateBinarySameShape,
//    ValidateMulCompatible, ValidateSquareOperand) at kernel entry.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NotEmpty → Shape).
//  - Each primitive validator documents what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Both a nil interface and a typed nil *Dense are rejected.
// Only *Dense is unwrapped: a foreign Matrix that merely embeds a nil *Dense
// (or any other nil pointer) passes, and its own methods decide what
// Rows/Cols/At do. Such wrappers must guard their nil state themselves.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil[T Float](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // typed nil hidden in the interface
	}

	return nil
}

// ValidateNotEmpty ensures m has at least one row and one column.
//
// Implementation: assumes m is not nil (caller must ensure).
// Returns ErrEmptyMatrix otherwise.
// Complexity: O(1).
func ValidateNotEmpty[T Float](m Matrix[T]) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Float](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: ErrNotSquare if not square.
// Complexity: O(1).
func ValidateSquare[T Float](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateRectangular checks the rectangularity invariant of a row set:
// at least one row, a non-empty first row, and every row as long as the first.
//
// Errors:
//   - ErrEmptyMatrix when rows is empty or rows[0] has length zero.
//   - ErrDimensionMismatch (with the offending row index) on a ragged row.
//
// Complexity: O(len(rows)).
func ValidateRectangular[T Float](rows [][]T) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrEmptyMatrix)
	}
	c := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return fmt.Errorf("ValidateRectangular: row %d has %d columns, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateOperand: Composite NotNil → NotEmpty.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(1).
func ValidateOperand[T Float](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateOperand", err)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return validatorErrorf("ValidateOperand", err)
	}

	return nil
}

// ValidateBinarySameShape: Composite Operand(a) → Operand(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub and any other elementwise kernel.
func ValidateBinarySameShape[T Float](a, b Matrix[T]) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible: Composite Operand(a) → Operand(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Float](a, b Matrix[T]) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareOperand: Composite NotNil → NotEmpty → Square.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrNotSquare.
// Complexity: O(1).
// AI-Hints: Gate for Inverse and any factorization.
func ValidateSquareOperand[T Float](m Matrix[T]) error {
	if err := ValidateOperand(m); err != nil {
		return validatorErrorf("ValidateSquareOperand", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareOperand", err)
	}

	return nil
}
