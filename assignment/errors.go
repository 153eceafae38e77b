package assignment

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Every failure returned by this package matches one of
// them via errors.Is; positional detail travels in ShapeError / ValueError.
var (
	// ErrInvalidShape is returned when the cost matrix is not square.
	ErrInvalidShape = errors.New("assignment: cost matrix is not square")

	// ErrInvalidValue is returned when an entry is NaN or ±Inf.
	ErrInvalidValue = errors.New("assignment: cost matrix contains NaN or Inf")

	// ErrUnsolvableObjective is returned when maximization is requested but
	// the matrix maximum is infinite, so "max − cost" is undefined.
	ErrUnsolvableObjective = errors.New("assignment: cannot maximize over infinite entries")

	// ErrTooLarge is returned when n exceeds the limit set by WithMaxSize.
	ErrTooLarge = errors.New("assignment: cost matrix exceeds size limit")

	// ErrUnknownObjective is returned for an Objective outside {Minimize, Maximize}.
	ErrUnknownObjective = errors.New("assignment: unknown objective")

	// ErrNotPermutation is returned by TotalCost for assignments that are not
	// a permutation of 0..n-1.
	ErrNotPermutation = errors.New("assignment: assignment is not a permutation")
)

// ShapeError reports the first row whose length differs from the row count.
type ShapeError struct {
	Row  int // offending row index
	Len  int // its length
	Want int // the row count
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("assignment: row %d has %d entries, want %d", e.Row, e.Len, e.Want)
}

// Unwrap returns ErrInvalidShape.
func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

// SizeError reports an order above the WithMaxSize limit.
type SizeError struct {
	N, Limit int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("assignment: %d×%d exceeds limit %d", e.N, e.N, e.Limit)
}

// Unwrap returns ErrTooLarge.
func (e *SizeError) Unwrap() error { return ErrTooLarge }

// ValueError reports the first non-finite entry in row-major order.
//
// Under Maximize a +Inf entry is an infinite matrix maximum, which makes
// the objective transformation undefined, so the error matches both
// ErrInvalidValue and ErrUnsolvableObjective.
type ValueError struct {
	Row, Col  int
	Value     float64
	Objective Objective
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("assignment: invalid value %v at (%d, %d)", e.Value, e.Row, e.Col)
}

// Unwrap returns the sentinels this error matches.
func (e *ValueError) Unwrap() []error {
	if e.Objective == Maximize && math.IsInf(e.Value, 1) {
		return []error{ErrInvalidValue, ErrUnsolvableObjective}
	}

	return []error{ErrInvalidValue}
}
