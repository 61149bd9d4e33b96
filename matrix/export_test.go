// SPDX-License-Identifier: MIT

package matrix

// Test bridge for matrix_test: read-only views of unexported state.

// OptionsSnapshot is a stable, read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Pivoting       PivotStrategy
	PivotTolerance float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts exactly as the kernels do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Pivoting:       o.pivoting,
		PivotTolerance: o.pivotTol,
		ValidateNaNInf: o.validateNaNInf,
	}
}

// PivotCandidate exposes the partial-pivot row selection over an n×2n buffer.
func PivotCandidate[T Float](aug []T, n, col int) int { return pivotCandidate(aug, n, col) }

// ValidatesNaNInf reports the numeric policy captured by a Dense.
func ValidatesNaNInf[T Float](m *Dense[T]) bool { return m.validateNaNInf }

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPivotToleranceInvalid = panicPivotToleranceInvalid
	PanicPivotStrategyInvalid  = panicPivotStrategyInvalid
)
