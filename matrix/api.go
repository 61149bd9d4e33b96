// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common construction tasks.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use ZerosLike to preallocate a buffer with an operand's shape.
//   - Use IdentityLike as the reference in Mul(Inverse(A), A) ≈ I checks.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(r*c) zeroing.
func ZerosLike[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateOperand(m); err != nil {
		return nil, err
	}

	return newDense[T](m.Rows(), m.Cols(), DefaultValidateNaNInf), nil
}

// IdentityLike returns I_n with n = Rows(m); requires a square operand.
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrNotSquare.
// Complexity: O(n^2).
func IdentityLike[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareOperand(m); err != nil {
		return nil, err
	}

	return Identity[T](m.Rows())
}
