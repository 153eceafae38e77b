// SPDX-License-Identifier: MIT
// Package: matrix
//
// Shared input checks: nil, square shape and finiteness. They are pure,
// allocate nothing on success and scan cells in row-major order, stopping
// at the first offending cell.

package matrix

import "fmt"

// validatorErrorf prefixes err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense is treated as nil too.
//
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite scans m in row-major order and reports the first NaN/±Inf
// cell as a *CellError (which unwraps to ErrNaNInf).
//
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for off, v := range d.data {
			if !isFinite(v) {
				return &CellError{Row: off / d.c, Col: off % d.c, Value: v}
			}
		}

		return nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if !isFinite(v) {
				return &CellError{Row: i, Col: j, Value: v}
			}
		}
	}

	return nil
}
