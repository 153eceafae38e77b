package assignment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/stretchr/testify/require"
)

const dualTol = 1e-9

// TestMatch_DualCertificate checks, on reduced random matrices, that the
// final potentials are dual feasible, every matched edge is tight, and the
// dual objective equals the primal one.
func TestMatch_DualCertificate(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 40; trial++ {
		n := 1 + rng.Intn(10)
		reduced, err := assignment.HookNormalize(randomMatrix(rng, n, 0, 50), assignment.Minimize)
		require.NoError(t, err)

		p, u, v, err := assignment.HookMatch(reduced)
		require.NoError(t, err)
		require.Len(t, p, n+1)
		require.Len(t, u, n+1)
		require.Len(t, v, n+1)

		seen := make([]bool, n+1)
		var primal, dual float64
		for j := 1; j <= n; j++ {
			i := p[j]
			require.True(t, i >= 1 && i <= n, "column %d unmatched", j)
			require.False(t, seen[i], "row %d matched twice", i)
			seen[i] = true

			slack := reduced[i-1][j-1] - u[i] - v[j]
			require.InDelta(t, 0, slack, dualTol, "matched edge (%d,%d) not tight", i, j)
			primal += reduced[i-1][j-1]
		}
		for k := 1; k <= n; k++ {
			dual += u[k] + v[k]
		}
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				require.GreaterOrEqual(t, reduced[i-1][j-1]-u[i]-v[j], -dualTol)
			}
		}
		require.InDelta(t, primal, dual, dualTol*float64(n+1))
	}
}

// TestMatch_AllZeroIdentity pins the tie-break: with every edge tight each
// row takes the first free column.
func TestMatch_AllZeroIdentity(t *testing.T) {
	zero := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	p, u, v, err := assignment.HookMatch(zero)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, p[1:])
	for k := 1; k <= 3; k++ {
		require.Zero(t, u[k])
		require.Zero(t, v[k])
	}
}

func TestMatch_Empty(t *testing.T) {
	p, _, _, err := assignment.HookMatch(nil)
	require.NoError(t, err)
	require.Len(t, p, 1)
}

// TestMatch_OverflowGuard feeds a row whose reduced costs are all +Inf; the
// matcher must report it instead of looping.
func TestMatch_OverflowGuard(t *testing.T) {
	_, _, _, err := assignment.HookMatch([][]float64{{math.Inf(1), math.Inf(1)}, {0, 0}})
	require.ErrorIs(t, err, assignment.ErrInvalidValue)
}

func TestCompose(t *testing.T) {
	// p[j] = row (1-based) matched to column j: row1→col2, row2→col1, row3→col3.
	res := assignment.HookCompose([]int{3, 2, 1, 3}, knownCost)
	require.Equal(t, []int{1, 0, 2}, res.Assignment)
	require.Equal(t, 5.0, res.Total)

	empty := assignment.HookCompose([]int{0}, nil)
	require.Empty(t, empty.Assignment)
	require.Zero(t, empty.Total)
}
