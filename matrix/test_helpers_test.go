// SPDX-License-Identifier: MIT

// Package matrix_test: shared helpers for matrix tests.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
)

// MustDense creates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense creates an r×c matrix from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// RandFilledDense fills an r×c matrix with deterministic values in [-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols in row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// transposed is a minimal Matrix implementation that is not a *Dense; it
// exposes the transpose of base so Materialize has to walk At.
type transposed struct{ base *matrix.Dense }

func (t transposed) Rows() int                     { return t.base.Cols() }
func (t transposed) Cols() int                     { return t.base.Rows() }
func (t transposed) At(i, j int) (float64, error)  { return t.base.At(j, i) }
func (t transposed) Set(i, j int, v float64) error { return t.base.Set(j, i, v) }
func (t transposed) Clone() matrix.Matrix {
	return transposed{base: t.base.Clone().(*matrix.Dense)}
}
