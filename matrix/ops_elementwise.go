// SPDX-License-Identifier: MIT
// Package matrix: elementwise comparison helpers.
//
// Purpose:
//   - AllClose compares two matrices under a relative + absolute tolerance, the
//     natural check for results of floating-point kernels such as Inverse.
//   - Equal is the exact counterpart for integer-valued fixtures.

package matrix

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil, non-empty, and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Tolerances are float64 for both precisions; a float32 comparison
//     promotes cells to float64 before the test.
//   - A NaN cell never compares close.
//
// Errors: ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1). Deterministic, early exit on the first violation.
func AllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if !closeTo(float64(da.data[idx]), float64(db.data[idx]), rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var (
		i, j   int
		av, bv T
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if !closeTo(float64(av), float64(bv), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar relation used by AllClose.
// Written as a negated "<=" so that NaN on either side yields false.
func closeTo(a, b, rtol, atol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	absb := b
	if absb < 0 {
		absb = -absb
	}

	return diff <= atol+rtol*absb
}

// Equal reports whether a and b have the same shape and bitwise-equal cells
// under ==. Nil operands or accessor failures compare unequal.
// Complexity: O(r*c).
func Equal[T Float](a, b Matrix[T]) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
