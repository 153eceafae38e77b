// SPDX-License-Identifier: MIT

// Package matrix - the flat row-major cost buffer used by the solver.
//
// Contract:
//   - Cell (i, j) lives at offset i*cols + j; rows are contiguous so the
//     solver can scan them through RowView without copying.
//   - At/Set/RowView report bad indices as errors, never panics.
//   - The finite-only policy is decided once at construction.
//
// Complexity: construction O(r*c); At, Set and RowView O(1); Clone O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// method tags for denseErrorf

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers
	ctxRowView = "RowView" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the row-major Matrix implementation. The zero value is not
// usable; build one with NewDense, NewSquare or FromRows.
type Dense struct {
	r, c           int       // row and column counts (>=0; zero only via NewSquare(0))
	data           []float64 // len == r*c
	validateNaNInf bool      // finite-only policy for Set and Apply
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a zero-filled rows×cols matrix. Both dimensions must be
// positive (ErrInvalidDimensions otherwise); the only empty matrix is the
// 0×0 one from NewSquare(0) or FromRows(nil).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// NewSquare creates an n×n zero matrix. Unlike NewDense it accepts n == 0,
// which yields a legal empty matrix (degenerate square problems are valid).
//
// Complexity: Time O(n²), Space O(n²).
func NewSquare(n int, opts ...Option) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(n, n, gatherOptions(opts...)), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense(rows, cols int, o Options) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns Rows() and Cols().
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to its offset; callers add coordinates to the error.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads cell (row, col). Bad indices yield a wrapped ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v into cell (row, col).
//
// Errors: ErrOutOfRange, or ErrNaNInf for a non-finite v under the policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone copies the buffer; the copy keeps the numeric policy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// RowView returns row i as a slice sharing the backing buffer.
// Writes through the slice bypass the numeric policy; it exists for hot
// loops that have already validated their data.
//
// Complexity: O(1), no allocation.
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Apply replaces every element with fn(i, j, v), visiting cells in
// row-major order. Under the finite-only policy the first non-finite result
// aborts the pass with ErrNaNInf; cells already visited keep their new values.
//
// Complexity: O(r*c).
func (m *Dense) Apply(fn func(i, j int, v float64) float64) error {
	var i, j, off int
	var nv float64
	for i = 0; i < m.r; i++ {
		off = i * m.c
		for j = 0; j < m.c; j++ {
			nv = fn(i, j, m.data[off+j])
			if m.validateNaNInf && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[off+j] = nv
		}
	}

	return nil
}

// String prints one bracketed row per line, for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
