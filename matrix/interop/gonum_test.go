// SPDX-License-Identifier: MIT

package interop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/matrix/interop"
	"github.com/katalvlaran/parmatmul/parallel"
)

func TestGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d, err := interop.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d.ToRows())

	src.Set(0, 0, 100) // copies, not views
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	back := interop.ToGonum(d)
	require.True(t, mat.Equal(back, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
}

// TestFromGonumStridedView reads a submatrix whose stride exceeds its width.
func TestFromGonumStridedView(t *testing.T) {
	base := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	view := base.Slice(1, 3, 1, 3)
	d, err := interop.FromGonum(view)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 7}, {10, 11}}, d.ToRows())

	// Non-Dense gonum matrices go through At.
	tr, err := interop.FromGonum(base.T())
	require.NoError(t, err)
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, []float64{1, 5, 9}, tr.ToRows()[0])
}

func TestFromGonumNil(t *testing.T) {
	_, err := interop.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestWrapGonumFeedsEngine multiplies gonum operands without converting them
// by hand and compares against gonum's own product.
func TestWrapGonumFeedsEngine(t *testing.T) {
	ga := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	gb := mat.NewDense(2, 2, []float64{1, 0, -1, 2})
	wa, err := interop.WrapGonum(ga)
	require.NoError(t, err)
	wb, err := interop.WrapGonum(gb)
	require.NoError(t, err)

	c, err := parallel.Multiply(wa, wb, 2)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(ga, gb)
	require.True(t, mat.Equal(&want, interop.ToGonum(c)))
}

func TestGonumMatrixAccessors(t *testing.T) {
	g, err := interop.WrapGonum(mat.NewDense(2, 2, nil))
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 2, g.Cols())

	require.NoError(t, g.Set(1, 0, 3.5))
	v, err := g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
	require.Equal(t, 3.5, g.Unwrap().At(1, 0))

	_, err = g.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, -1, 1), matrix.ErrOutOfRange)

	cl := g.Clone()
	require.NoError(t, cl.Set(1, 0, -1))
	v, err = g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = interop.WrapGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNilGonumMatrix checks a typed-nil view is reported, not dereferenced.
func TestNilGonumMatrix(t *testing.T) {
	var g *interop.GonumMatrix
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 0, g.Cols())
	_, err := g.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, g.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Nil(t, g.Clone())
	require.Nil(t, g.Unwrap())

	b, err := interop.WrapGonum(mat.NewDense(1, 1, []float64{1}))
	require.NoError(t, err)
	for _, w := range []int{1, 3} {
		c, err := parallel.Multiply(g, b, w)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, "w=%d", w)
		require.Nil(t, c)

		c, err = parallel.Multiply(b, g, w)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, "w=%d", w)
		require.Nil(t, c)
	}
}
