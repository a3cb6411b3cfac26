// SPDX-License-Identifier: MIT

// Package matrix: conversions between *Dense and host representations.
//
// Nested slices ([][]float64) are the representation external callers hand
// over (JSON arrays, list-of-lists bindings). FromRows validates that the input
// is a well-formed rectangular matrix before any flat buffer is built; ToRows
// copies the flat buffer back out.
package matrix

import (
	"fmt"
	"math"
)

const (
	opFromRows    = "FromRows"
	opMaterialize = "Materialize"
)

// FromRows builds a *Dense from a rectangular slice of rows.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when any row length differs from the first.
//   - ErrNaNInf when the numeric policy is on and a value is not finite.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromRows, i, len(row), c, ErrRaggedRows)
		}
		for j, v := range row {
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("%s: %w", opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ToRows copies m into a freshly allocated slice of rows.
// The result shares no storage with m.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Materialize returns a fresh *Dense holding the values of m.
// A *Dense input is cloned with its numeric policy; any other Matrix is read
// through At, and opts select the policy of the new buffer.
//
// Errors: ErrNilMatrix, shape errors, or the first At failure.
// Complexity: O(r*c).
func Materialize(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opMaterialize, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMaterialize, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opMaterialize, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opMaterialize, err)
			}
		}
	}

	return out, nil
}
