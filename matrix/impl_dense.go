// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the rectangularity invariant once, at ingestion (FromRows).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): kernels operate on the flat data slice directly.
//   - Dense[float32] and Dense[float64] share every kernel; pick the precision at the call site.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/ToRows/FromRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"           // method tag used in error wrappers
	ctxSet          = "Set"          // method tag used in error wrappers
	ctxNewDense     = "NewDense"     // ctor tag for NewDense
	ctxNewDenseFrom = "NewDenseFrom" // ctor tag for NewDenseFrom
	ctxFromRows     = "FromRows"     // ctor tag for FromRows
	ctxIdentity     = "Identity"     // ctor tag for Identity
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtCell     = "%g"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// ctorErrorf wraps a constructor failure with the requested shape.
func ctorErrorf(ctor string, rows, cols int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", ctor, rows, cols, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense[T Float] struct {
	r, c           int  // row and column counts (> 0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[float32] = (*Dense[float32])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// checkShape validates a requested shape.
// Negative dimensions and shapes whose cell count overflows int are malformed
// (ErrBadShape); a zero dimension describes an empty matrix (ErrEmptyMatrix),
// which no operation accepts.
func checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if rows == 0 || cols == 0 {
		return ErrEmptyMatrix
	}
	if rows > math.MaxInt/cols {
		return ErrBadShape // rows*cols would wrap
	}

	return nil
}

// newDense allocates an r×c zero matrix without validation.
// Callers MUST have validated the shape (kernels derive it from validated operands).
func newDense[T Float](rows, cols int, validateNaNInf bool) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Empty shapes are rejected so that no kernel ever sees a 0×N operand it allocated itself.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: WithNaNInfCheck is honored; other options are ignored.
//
// Returns:
//   - *Dense[T]: newly allocated zero matrix.
//
// Errors:
//   - ErrBadShape (negative dimension), ErrEmptyMatrix (zero dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, ctorErrorf(ctxNewDense, rows, cols, err)
	}
	o := gatherOptions(opts...)

	return newDense[T](rows, cols, o.validateNaNInf), nil
}

// NewDenseFrom creates an r×c matrix from a row-major buffer.
// The buffer is copied; later writes to data do not affect the matrix.
//
// Errors:
//   - ErrBadShape, ErrEmptyMatrix (shape), ErrDimensionMismatch (len(data) != rows*cols),
//     ErrNaNInf (non-finite value under WithNaNInfCheck(true)).
//
// Complexity: O(r*c).
func NewDenseFrom[T Float](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, ctorErrorf(ctxNewDenseFrom, rows, cols, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): buffer holds %d values: %w",
			ctxNewDenseFrom, rows, cols, len(data), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	m := newDense[T](rows, cols, o.validateNaNInf)
	copy(m.data, data)
	if err := m.checkFinite(); err != nil {
		return nil, ctorErrorf(ctxNewDenseFrom, rows, cols, err)
	}

	return m, nil
}

// FromRows builds a Dense from a row set, enforcing the rectangularity invariant.
// Implementation:
//   - Stage 1: reject zero rows or a zero-length first row (ErrEmptyMatrix).
//   - Stage 2: every row must match the first row's length (ErrDimensionMismatch,
//     wrapped with the offending row index).
//   - Stage 3: copy rows into the flat buffer in i→j order.
//
// Inputs:
//   - rows: caller-held cells; never retained or mutated.
//   - opts: WithNaNInfCheck is honored.
//
// Returns:
//   - *Dense[T]: independent copy of the cells.
//
// Errors:
//   - ErrEmptyMatrix, ErrDimensionMismatch, ErrNaNInf (under WithNaNInfCheck(true)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the single gate for [][]T input; the *Rows facades all go through it.
func FromRows[T Float](rows [][]T, opts ...Option) (*Dense[T], error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	r, c := len(rows), len(rows[0])

	o := gatherOptions(opts...)
	m := newDense[T](r, c, o.validateNaNInf)
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}
	if err := m.checkFinite(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	return m, nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrBadShape (n < 0), ErrEmptyMatrix (n == 0).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Float](n int, opts ...Option) (*Dense[T], error) {
	if err := checkShape(n, n); err != nil {
		return nil, ctorErrorf(ctxIdentity, n, n, err)
	}
	o := gatherOptions(opts...)
	m := newDense[T](n, n, o.validateNaNInf)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// checkFinite enforces the numeric policy over the whole buffer.
// A no-op when the policy is off.
func (m *Dense[T]) checkFinite() error {
	if !m.validateNaNInf {
		return nil
	}
	for idx, v := range m.data {
		if isNonFinite(float64(v)) {
			return denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the
//     matrix was built with WithNaNInfCheck(true).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(float64(v)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The returned dynamic type is *Dense[T].
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ToRows materializes the matrix as an independent [][]T.
// Rows are carved from a single backing allocation.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	flat := make([]T, len(m.data))
	copy(flat, m.data)
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = flat[i*m.c : (i+1)*m.c : (i+1)*m.c] // cap-limited: appends never bleed into the next row
	}

	return out
}

// String renders one bracketed, comma-separated row per line for diagnostics.
// Not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, _fmtCell, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
