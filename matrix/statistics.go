// SPDX-License-Identifier: MIT

// Package matrix - row/column/global reductions on Dense.
//
// All reductions use exact comparisons and keep the first encountered
// extremum, scanning in ascending index order.
package matrix

import "fmt"

// Max returns the largest element of m. An empty matrix yields ErrEmpty.
//
// Complexity: O(r*c).
func (m *Dense) Max() (float64, error) {
	if len(m.data) == 0 {
		return 0, ErrEmpty
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// RowMin returns the smallest element of row i.
//
// Complexity: O(c).
func (m *Dense) RowMin(i int) (float64, error) {
	row, err := m.RowView(i)
	if err != nil {
		return 0, err
	}
	if len(row) == 0 {
		return 0, ErrEmpty
	}
	best := row[0]
	for _, v := range row[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// ColMin returns the smallest element of column j.
//
// Complexity: O(r).
func (m *Dense) ColMin(j int) (float64, error) {
	if j < 0 || j >= m.c {
		return 0, fmt.Errorf("Dense.ColMin(%d): %w", j, ErrOutOfRange)
	}
	if m.r == 0 {
		return 0, ErrEmpty
	}
	best := m.data[j]
	for i := 1; i < m.r; i++ {
		if v := m.data[i*m.c+j]; v < best {
			best = v
		}
	}

	return best, nil
}

// SubRow subtracts delta from every element of row i, bypassing the numeric
// policy (finite inputs and a finite delta stay finite).
//
// Complexity: O(c).
func (m *Dense) SubRow(i int, delta float64) error {
	row, err := m.RowView(i)
	if err != nil {
		return err
	}
	for j := range row {
		row[j] -= delta
	}

	return nil
}

// SubCol subtracts delta from every element of column j.
//
// Complexity: O(r).
func (m *Dense) SubCol(j int, delta float64) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("Dense.SubCol(%d): %w", j, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] -= delta
	}

	return nil
}
