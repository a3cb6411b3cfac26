// SPDX-License-Identifier: MIT

// Package interop converts between *matrix.Dense and the matrix types of
// other Go numeric libraries:
//
//   - gonum.org/v1/gonum/mat: FromGonum, ToGonum, and WrapGonum, a
//     matrix.Matrix view over a *mat.Dense that the parallel engine accepts
//     directly.
//   - gorgonia.org/tensor: FromTensor and ToTensor for 2-D float64 tensors.
//
// Every conversion copies; no result shares storage with its source.
package interop
