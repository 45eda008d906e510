// Package matrix provides the dense numeric container behind bipartite
// projection.
//
// # Overview
//
// A [Dense] is a fixed-size M×N matrix of float64 values stored row-major in
// a single backing slice. It is deliberately small: get/set access, a scaled
// copy, and [Mul], the product used to turn two bi-adjacency matrices into a
// co-occurrence matrix.
//
// # Empty Matrices
//
// Unlike most linear-algebra packages, a matrix with zero rows or zero
// columns is valid. Projections routinely produce them: a category value
// that matches no node yields an empty index set and therefore an empty
// axis. Multiplying an M×0 matrix by a 0×P matrix yields an all-zero M×P
// result.
//
// # Parallel Multiplication
//
// [Mul] computes output rows in parallel. Every output cell is a fixed-order
// dot product of one row of the left operand and one column of the right
// operand, so each cell is a deterministic function of its inputs regardless
// of how rows are scheduled across workers.
//
// # gonum Interop
//
// [Dense.Mat] exposes the matrix as a gonum [mat.Matrix] for formatting and
// comparison with gonum's own routines.
//
// [mat.Matrix]: https://pkg.go.dev/gonum.org/v1/gonum/mat#Matrix
package matrix
