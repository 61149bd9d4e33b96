// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for storage and inversion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a call's options.
//
// Design goals:
//   - Deterministic behavior: no global state, options resolved per call.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Pivoting policy:
//   - PivotNone reproduces naive Gauss-Jordan: the diagonal entry of the
//     current row is the pivot, and a zero diagonal is reported as singular even
//     when a row below could have been swapped in. This is the default.
//   - PivotPartial is an opt-in strategy that swaps in the row with the largest
//     |candidate| before normalising. It changes observable behavior on inputs
//     such as permutation matrices, so it is never enabled implicitly.
//   - Pivot tolerance:
//   - A pivot is treated as zero when |pivot| <= tolerance. The default of 0
//     is an exact floating-point comparison.
//   - Numeric ingestion policy:
//   - validateNaNInf controls whether constructors and Set reject NaN/±Inf.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Pivot strategy ----------

// PivotStrategy selects how Inverse chooses the pivot row at each elimination step.
type PivotStrategy uint8

const (
	// PivotNone uses the diagonal entry in place; no row exchange is ever made.
	PivotNone PivotStrategy = iota

	// PivotPartial exchanges the current row with the row (at or below it)
	// holding the largest absolute value in the pivot column.
	PivotPartial
)

// Human-readable names of the pivot strategies.
const (
	pivotNoneName    = "none"
	pivotPartialName = "partial"
)

// String implements fmt.Stringer.
func (p PivotStrategy) String() string {
	switch p {
	case PivotNone:
		return pivotNoneName
	case PivotPartial:
		return pivotPartialName
	default:
		return fmt.Sprintf("PivotStrategy(%d)", uint8(p))
	}
}

// valid reports whether p is one of the declared strategies.
func (p PivotStrategy) valid() bool { return p == PivotNone || p == PivotPartial }

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting keeps elimination strictly on the diagonal.
	DefaultPivoting = PivotNone

	// DefaultPivotTolerance makes the zero-pivot test exact (pivot == 0).
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf leaves ingestion unchecked; raw sensor feeds may
	// carry non-finite values that the caller filters itself.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"
	panicPivotStrategyInvalid  = "matrix: WithPivoting: unknown pivot strategy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// inversion policy
	pivoting PivotStrategy // DefaultPivoting
	pivotTol float64       // >= 0; DefaultPivotTolerance

	// ingestion policy
	validateNaNInf bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivoting selects the pivot strategy used by Inverse.
// Implementation:
//   - Stage 1: validate p is a declared PivotStrategy.
//   - Stage 2: return a setter that writes p into Options.
//
// Inputs:
//   - p: PivotNone (default) or PivotPartial.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when p is not a declared strategy.
//
// Notes:
//   - PivotPartial succeeds on matrices PivotNone reports as singular
//     (any matrix that needs a row exchange). Choose it explicitly.
func WithPivoting(p PivotStrategy) Option {
	if !p.valid() {
		panic(panicPivotStrategyInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithPivotTolerance sets the magnitude at or below which a pivot counts as zero.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: non-negative finite tolerance; 0 keeps the exact comparison.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - The tolerance is absolute; it is compared against |pivot| in the
//     matrix's own precision, after conversion of eps to T.
func WithPivotTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// WithNaNInfCheck toggles rejection of NaN/±Inf on construction and Set.
// The flag is captured by each Dense at creation time and carried by Clone.
func WithNaNInfCheck(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// ---------- Resolution ----------

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		pivoting:       DefaultPivoting,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts in order over the defaults.
// nil entries are skipped so callers can build option slices conditionally.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
