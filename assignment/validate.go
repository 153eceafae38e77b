package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hungarian/matrix"
)

// validate checks shape, size limit and finiteness, in that order, and
// returns n. It never mutates cost. n == 0 is valid.
//
// Complexity: O(n²).
func validate(cost [][]float64, obj Objective, o options) (int, error) {
	if !obj.valid() {
		return 0, fmt.Errorf("%v: %w", obj, ErrUnknownObjective)
	}

	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return 0, &ShapeError{Row: i, Len: len(row), Want: n}
		}
	}

	if o.maxSize > 0 && n > o.maxSize {
		return 0, &SizeError{N: n, Limit: o.maxSize}
	}

	if err := matrix.ValidateFinite(rowsMatrix(cost)); err != nil {
		return 0, asValueError(err, obj)
	}

	return n, nil
}

// asValueError converts a matrix cell violation into a *ValueError; any
// other error is returned unchanged.
func asValueError(err error, obj Objective) error {
	var ce *matrix.CellError
	if errors.As(err, &ce) {
		return &ValueError{Row: ce.Row, Col: ce.Col, Value: ce.Value, Objective: obj}
	}

	return err
}

// rowsMatrix lets the matrix validators read caller rows without a copy.
// It assumes a square shape, which validate checks first.
type rowsMatrix [][]float64

var _ matrix.Matrix = rowsMatrix(nil)

func (r rowsMatrix) Rows() int { return len(r) }

func (r rowsMatrix) Cols() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}

func (r rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(r) || j < 0 || j >= len(r[i]) {
		return 0, fmt.Errorf("rows(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return r[i][j], nil
}

func (r rowsMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(r) || j < 0 || j >= len(r[i]) {
		return fmt.Errorf("rows(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	r[i][j] = v

	return nil
}

func (r rowsMatrix) Clone() matrix.Matrix {
	cp := make(rowsMatrix, len(r))
	for i, row := range r {
		cp[i] = append([]float64(nil), row...)
	}

	return cp
}
