// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/parmatmul/matrix"
)

const (
	opFromGonum = "FromGonum"
	opWrapGonum = "WrapGonum"
)

// FromGonum copies any gonum matrix into a fresh *matrix.Dense.
// A *mat.Dense source is read row by row through its raw storage, honouring
// its stride; other sources are read through At.
//
// Errors: matrix.ErrNilMatrix, shape errors, matrix.ErrNaNInf under policy.
// Complexity: O(r*c).
func FromGonum(m mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := m.Dims()
	if err := matrix.ValidateShape(r, c); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	data := make([]float64, r*c)
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data[i*c+j] = m.At(i, j)
			}
		}
	}

	out, err := matrix.NewDenseFrom(r, c, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return out, nil
}

// ToGonum copies d into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(d *matrix.Dense) *mat.Dense {
	return mat.NewDense(d.Rows(), d.Cols(), append([]float64(nil), d.RawData()...))
}

// GonumMatrix adapts a *mat.Dense to matrix.Matrix with bounds-checked
// accessors. Reads and writes go straight to the wrapped gonum storage.
type GonumMatrix struct {
	m *mat.Dense
}

var _ matrix.Matrix = (*GonumMatrix)(nil)

// WrapGonum returns a matrix.Matrix view of m.
// Errors: matrix.ErrNilMatrix for a nil or empty m.
func WrapGonum(m *mat.Dense) (*GonumMatrix, error) {
	if m == nil || m.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", opWrapGonum, matrix.ErrNilMatrix)
	}

	return &GonumMatrix{m: m}, nil
}

// Rows returns the row count, or 0 for a nil receiver.
func (g *GonumMatrix) Rows() int {
	if g == nil {
		return 0
	}
	r, _ := g.m.Dims()
	return r
}

// Cols returns the column count, or 0 for a nil receiver.
func (g *GonumMatrix) Cols() int {
	if g == nil {
		return 0
	}
	_, c := g.m.Dims()
	return c
}

func (g *GonumMatrix) check(method string, i, j int) error {
	if g == nil {
		return fmt.Errorf("GonumMatrix.%s(%d,%d): %w", method, i, j, matrix.ErrNilMatrix)
	}
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("GonumMatrix.%s(%d,%d): %w", method, i, j, matrix.ErrOutOfRange)
	}

	return nil
}

// At returns element (i, j), matrix.ErrOutOfRange, or matrix.ErrNilMatrix
// for a nil receiver.
func (g *GonumMatrix) At(i, j int) (float64, error) {
	if err := g.check("At", i, j); err != nil {
		return 0, err
	}

	return g.m.At(i, j), nil
}

// Set writes element (i, j) or returns matrix.ErrOutOfRange /
// matrix.ErrNilMatrix.
func (g *GonumMatrix) Set(i, j int, v float64) error {
	if err := g.check("Set", i, j); err != nil {
		return err
	}
	g.m.Set(i, j, v)

	return nil
}

// Clone returns a view over a deep copy of the wrapped matrix, or nil for a
// nil receiver.
func (g *GonumMatrix) Clone() matrix.Matrix {
	if g == nil {
		return nil
	}

	return &GonumMatrix{m: mat.DenseCopyOf(g.m)}
}

// Unwrap returns the wrapped gonum matrix.
func (g *GonumMatrix) Unwrap() *mat.Dense {
	if g == nil {
		return nil
	}

	return g.m
}
