// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface accepted by assignment.SolveMatrix.
package matrix

// Matrix is a mutable rows×cols grid of float64 cells addressed from 0.
// Implementations report bad indices as errors rather than panicking.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads cell (i, j); ErrOutOfRange for bad indices.
	At(i, j int) (float64, error)

	// Set writes cell (i, j); ErrOutOfRange for bad indices, ErrNaNInf when
	// the implementation is finite-only and v is NaN or ±Inf.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
