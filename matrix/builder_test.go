package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "FromRows must not alias caller data")
}

func TestFromRows_Empty(t *testing.T) {
	m, err := matrix.FromRows(nil)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Zero(t, r)
	require.Zero(t, c)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "row 1")
}

func TestFromRows_ZeroWidth(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{}, {}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_NonFinite(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {math.NaN(), 4}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	var ce *matrix.CellError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 1, ce.Row)
	require.Equal(t, 0, ce.Col)

	m, err := matrix.FromRows([][]float64{{math.Inf(1)}}, matrix.WithoutNaNInfCheck())
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// opaque hides the concrete *Dense type to force the generic ToRows path.
type opaque struct{ matrix.Matrix }

func TestToRows_GenericPath(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	fast, err := matrix.ToRows(m)
	require.NoError(t, err)
	slow, err := matrix.ToRows(opaque{m})
	require.NoError(t, err)
	require.Equal(t, fast, slow)

	_, err = matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
