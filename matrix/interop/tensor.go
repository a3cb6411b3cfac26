// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/katalvlaran/parmatmul/matrix"
)

const opFromTensor = "FromTensor"

// FromTensor copies a 2-D float64 gorgonia tensor into a fresh *matrix.Dense.
// Elements are read through At, so views and non-contiguous tensors are
// handled the same way as plain ones.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil tensor.
//   - ErrUnsupported for a rank other than 2 or a dtype other than float64.
//   - matrix shape errors and matrix.ErrNaNInf under policy.
//
// Complexity: O(r*c).
func FromTensor(t *tensor.Dense, opts ...matrix.Option) (*matrix.Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opFromTensor, matrix.ErrNilMatrix)
	}
	if t.Dims() != 2 {
		return nil, fmt.Errorf("%s: rank %d: %w", opFromTensor, t.Dims(), ErrUnsupported)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("%s: dtype %v: %w", opFromTensor, t.Dtype(), ErrUnsupported)
	}
	shape := t.Shape()
	r, c := shape[0], shape[1]
	if err := matrix.ValidateShape(r, c); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromTensor, err)
	}

	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opFromTensor, err)
			}
			f, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("%s: element %T: %w", opFromTensor, v, ErrUnsupported)
			}
			data[i*c+j] = f
		}
	}

	out, err := matrix.NewDenseFrom(r, c, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromTensor, err)
	}

	return out, nil
}

// ToTensor copies d into a new row-major float64 tensor of shape (rows, cols).
// Complexity: O(r*c).
func ToTensor(d *matrix.Dense) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(d.Rows(), d.Cols()),
		tensor.WithBacking(append([]float64(nil), d.RawData()...)),
	)
}
