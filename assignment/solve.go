package assignment

import (
	"fmt"

	"github.com/katalvlaran/hungarian/matrix"
)

// Solve returns the permutation that minimizes (or, with Maximize,
// maximizes) Σ cost[i][Assignment[i]], together with that total computed on
// the original matrix.
//
// Stages (strictly forward, no feedback):
//  1. validate: square shape, optional size cap, finite entries.
//  2. normalize: private copy, maximize inversion, row/column reduction.
//  3. match: Kuhn–Munkres with potentials, one augmenting path per row.
//  4. compose: invert match pointers, price against the original.
//
// cost is never mutated. On error the returned Result is the zero value.
// Among equally optimal permutations the one returned is deterministic
// (first minimal slack in ascending column order wins), but only Total is
// guaranteed to agree with other solvers.
//
// Errors: ErrInvalidShape, ErrInvalidValue, ErrUnsolvableObjective,
// ErrTooLarge, ErrUnknownObjective.
//
// Complexity: O(n³) time, O(n²) extra space.
func Solve(cost [][]float64, obj Objective, opts ...Option) (Result, error) {
	n, err := validate(cost, obj, gatherOptions(opts...))
	if err != nil {
		return Result{}, err
	}
	if n == 0 {
		return Result{Assignment: []int{}}, nil
	}

	c, err := normalize(cost, obj)
	if err != nil {
		return Result{}, err
	}
	p, err := match(c)
	if err != nil {
		return Result{}, err
	}

	return compose(p, cost), nil
}

// Validate runs only the input checks of Solve and returns the matrix order.
// A nil error means Solve would not fail on the input itself.
func Validate(cost [][]float64, obj Objective, opts ...Option) (int, error) {
	return validate(cost, obj, gatherOptions(opts...))
}

// SolveMatrix is Solve for matrix.Matrix inputs. A nil or non-square matrix
// yields ErrInvalidShape (also matching the underlying matrix sentinel).
func SolveMatrix(m matrix.Matrix, obj Objective, opts ...Option) (Result, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("SolveMatrix: %w: %w", ErrInvalidShape, err)
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return Result{}, fmt.Errorf("SolveMatrix: %w", err)
	}

	return Solve(rows, obj, opts...)
}
