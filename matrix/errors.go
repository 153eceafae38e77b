// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// coordinates) and tests match them via errors.Is. Nothing in this package
// panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: " so log lines stay greppable.
// Wrap at the detection site with fmt.Errorf("ctx: %w", ErrX); callers keep
// matching with errors.Is.
var (
	// ErrInvalidDimensions: a requested dimension is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: a row or column index is outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates ragged or otherwise incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: Rows() != Cols() where a square matrix is required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix, including a typed nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmpty is returned by reductions that need at least one element.
	ErrEmpty = errors.New("matrix: empty matrix")
)

// CellError pins a numeric policy violation to a single cell.
// It unwraps to ErrNaNInf so callers can keep using errors.Is.
type CellError struct {
	Row, Col int
	Value    float64
}

func (e *CellError) Error() string {
	return fmt.Sprintf("matrix: cell (%d,%d) = %v: %v", e.Row, e.Col, e.Value, ErrNaNInf)
}

// Unwrap exposes the sentinel.
func (e *CellError) Unwrap() error { return ErrNaNInf }
