// Package gaussmat is a small dense-matrix toolkit for numeric Go code:
// elementwise arithmetic, products, transposes and Gauss-Jordan inversion
// over float32 or float64.
//
// What is inside?
//
//	matrix/ — the generic Matrix[T] contract, the row-major Dense[T]
//	          implementation, validators, kernels (Add, Sub, Mul, Scale,
//	          Transpose, Inverse), tolerance comparison and [][]T facades.
//	examples/ — a runnable nodal-analysis program built on matrix/.
//
// Design in one breath:
//
//   - Every operation returns a fresh result; operands are never mutated.
//   - Failures are sentinel errors (matrix.ErrSingular, matrix.ErrNotSquare, …)
//     wrapped with the operation name, matched with errors.Is.
//   - Inverse follows the textbook diagonal pivot by default and reports a
//     zero pivot as singular; partial pivoting is one option away.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := matrix.Inverse(a)   // [[-2, 1], [1.5, -0.5]]
//
//	go get github.com/katalvlaran/gaussmat
package gaussmat
