// SPDX-License-Identifier: MIT

// Package matrix - conversions between [][]float64 and Dense.
package matrix

import "fmt"

// FromRows deep-copies a row-major slice-of-slices into a new Dense.
//
// Implementation:
//   - Stage 1: every row must have len(rows[0]) entries; the first ragged
//     row is reported as "row %d: ErrDimensionMismatch".
//   - Stage 2: copy values; under the finite-only policy (default) the first
//     non-finite cell fails with a *CellError.
//
// An empty input yields the 0×0 matrix. The result never aliases rows.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	if r == 0 {
		return newDense(0, 0, o), nil
	}
	c := len(rows[0])
	var i, j int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}
	if c == 0 {
		return nil, fmt.Errorf("FromRows: %d rows of zero length: %w", r, ErrInvalidDimensions)
	}

	m := newDense(r, c, o)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if o.validateNaNInf && !isFinite(rows[i][j]) {
				return nil, &CellError{Row: i, Col: j, Value: rows[i][j]}
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// ToRows returns an independent [][]float64 copy of m.
//
// Complexity: Time O(r*c), Space O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = append([]float64(nil), d.data[i*c:(i+1)*c]...)
		}

		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}
