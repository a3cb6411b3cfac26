// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/parmatmul/matrix"
)

// errNotNumeric reports a matrix entry that is not a number.
var errNotNumeric = errors.New("matrix entries must be numbers")

// readMatrix decodes a JSON array of numeric rows from path ("-" is stdin).
func readMatrix(path string, stdin io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	// Pointers tell a JSON null apart from 0.
	var raw [][]*float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	rows := make([][]float64, len(raw))
	for i, in := range raw {
		if in == nil {
			return nil, fmt.Errorf("decode %s: row %d is null: %w", path, i, errNotNumeric)
		}
		row := make([]float64, len(in))
		for j, v := range in {
			if v == nil {
				return nil, fmt.Errorf("decode %s: element (%d,%d) is null: %w", path, i, j, errNotNumeric)
			}
			row[j] = *v
		}
		rows[i] = row
	}
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// writeMatrix encodes m as a JSON array of rows to path, or to stdout when
// path is empty or "-".
func writeMatrix(path string, stdout io.Writer, m *matrix.Dense) error {
	w := stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(m.ToRows()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
