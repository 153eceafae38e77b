package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hungarian/matrix"
)

// normalize builds the reduced working matrix that drives the matcher.
//
// Implementation:
//   - Stage 1: deep-copy cost into a private finite-only Dense (caller data
//     is never touched).
//   - Stage 2: under Maximize replace every entry c with M − c, M = global max.
//   - Stage 3: subtract each row's minimum from the row.
//   - Stage 4: subtract each column's minimum (after Stage 3) from the column.
//
// The result is non-negative with at least one zero in every row and column.
//
// Errors:
//   - ErrInvalidShape for ragged input (validate normally catches it first).
//   - *ValueError for a non-finite entry (validate normally catches it
//     first); under Maximize a +Inf entry also matches ErrUnsolvableObjective.
//   - ErrInvalidValue when M − c overflows to infinity.
//
// Complexity: O(n²).
func normalize(cost [][]float64, obj Objective) (*matrix.Dense, error) {
	c, err := matrix.FromRows(cost, matrix.WithValidateNaNInf())
	if err != nil {
		var ce *matrix.CellError
		if errors.As(err, &ce) {
			return nil, asValueError(err, obj)
		}
		return nil, fmt.Errorf("normalize: %w: %w", ErrInvalidShape, err)
	}
	if c.Rows() != c.Cols() {
		return nil, fmt.Errorf("normalize: %d×%d: %w", c.Rows(), c.Cols(), ErrInvalidShape)
	}
	if c.Rows() == 0 {
		return c, nil
	}

	if obj == Maximize {
		if err = invert(c); err != nil {
			return nil, err
		}
	}
	if err = reduceRows(c); err != nil {
		return nil, err
	}
	if err = reduceCols(c); err != nil {
		return nil, err
	}

	return c, nil
}

// invert turns a maximization into the equivalent minimization of M − c.
// The finite-only policy of c rejects entries where M − c overflows.
func invert(c *matrix.Dense) error {
	m, err := c.Max()
	if err != nil {
		return err
	}
	if err = c.Apply(func(_, _ int, v float64) float64 { return m - v }); err != nil {
		return fmt.Errorf("normalize: %w: %w", ErrInvalidValue, err)
	}

	return nil
}

func reduceRows(c *matrix.Dense) error {
	for i := 0; i < c.Rows(); i++ {
		mi, err := c.RowMin(i)
		if err != nil {
			return err
		}
		if err = c.SubRow(i, mi); err != nil {
			return err
		}
	}

	return nil
}

func reduceCols(c *matrix.Dense) error {
	for j := 0; j < c.Cols(); j++ {
		mj, err := c.ColMin(j)
		if err != nil {
			return err
		}
		if err = c.SubCol(j, mj); err != nil {
			return err
		}
	}

	return nil
}
