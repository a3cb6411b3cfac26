// Package parmatmul computes dense matrix products C = A × B with a fixed
// number of workers that split the rows of C between them.
//
// What is inside:
//
//	matrix/          Dense row-major buffer, sentinel errors, validators,
//	                 numeric options and nested-slice conversions
//	matrix/interop/  adapters to gonum mat.Dense and gorgonia tensor.Dense
//	parallel/        row partitioning, the per-worker kernel and the
//	                 fan-out/join engine
//	cmd/parmatmul/   JSON in, JSON out command line front end + bench
//
// Guarantees:
//
//   - The result does not depend on the worker count: every element is the
//     same left-to-right float64 sum whichever worker computes it.
//   - Workers write disjoint row ranges of C; A and B are only read.
//   - Either a fully computed C is returned or an error is, never both.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	c, err := parallel.Multiply(a, b, 2)
//	// c.ToRows() == [[19 22] [43 50]]
//
//	go get github.com/katalvlaran/parmatmul
package parmatmul
