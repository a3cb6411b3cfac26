// SPDX-License-Identifier: MIT

package parallel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
)

// randDense builds an r×c matrix with deterministic values in [-1,1).
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// mustRows builds a matrix from nested rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// naiveProduct is the textbook definition C[i,j] = Σ_k A[i,k]*B[k,j],
// accumulated left to right from 0.0.
func naiveProduct(a, b *matrix.Dense) []float64 {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	ad, bd := a.RawData(), b.RawData()
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				sum += float64(ad[i*k+p] * bd[p*n+j])
			}
			out[i*n+j] = sum
		}
	}

	return out
}

// rowMajorView is a Matrix that is not a *matrix.Dense, so the engine has to
// copy it before dispatch.
type rowMajorView struct {
	r, c int
	data []float64
}

func (v *rowMajorView) Rows() int { return v.r }
func (v *rowMajorView) Cols() int { return v.c }
func (v *rowMajorView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, matrix.ErrOutOfRange
	}
	return v.data[i*v.c+j], nil
}
func (v *rowMajorView) Set(i, j int, x float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return matrix.ErrOutOfRange
	}
	v.data[i*v.c+j] = x
	return nil
}
func (v *rowMajorView) Clone() matrix.Matrix {
	return &rowMajorView{r: v.r, c: v.c, data: append([]float64(nil), v.data...)}
}
