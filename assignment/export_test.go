package assignment

import "github.com/katalvlaran/hungarian/matrix"

// Test-only hooks exposing the private stages to the external test package.

// HookValidate runs the validator with an optional size cap.
func HookValidate(cost [][]float64, obj Objective, maxSize int) (int, error) {
	return validate(cost, obj, options{maxSize: maxSize})
}

// HookNormalize returns the reduced working matrix as rows.
func HookNormalize(cost [][]float64, obj Objective) ([][]float64, error) {
	c, err := normalize(cost, obj)
	if err != nil {
		return nil, err
	}

	return matrix.ToRows(c)
}

// HookMatch runs the matcher on an already reduced matrix and exposes
// the final match pointers and potentials. Non-finite cells are let through
// so the overflow guard can be exercised.
func HookMatch(reduced [][]float64) (p []int, u, v []float64, err error) {
	c, err := matrix.FromRows(reduced, matrix.WithoutNaNInfCheck())
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := newMatcher(c)
	if err != nil {
		return nil, nil, nil, err
	}
	if err = m.run(); err != nil {
		return nil, nil, nil, err
	}

	return m.p, m.u, m.v, nil
}

// HookCompose exposes the result composer.
func HookCompose(p []int, cost [][]float64) Result {
	return compose(p, cost)
}
