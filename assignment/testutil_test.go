package assignment_test

import (
	"math"
	"math/bits"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/stretchr/testify/require"
)

// Tolerances for comparing totals against the oracle.
const (
	relTol = 1e-7
	absTol = 1e-7
)

// knownCost is the 3×3 scenario used across tests.
var knownCost = [][]float64{
	{4, 1, 3},
	{2, 0, 5},
	{3, 2, 2},
}

// optimum is the reference solver: an exact subset DP over columns,
// dp[mask] = best total assigning the first popcount(mask) rows to mask.
// It shares no code with the package under test. O(n·2ⁿ).
func optimum(cost [][]float64, obj assignment.Objective) float64 {
	n := len(cost)
	if n == 0 {
		return 0
	}
	better := func(a, b float64) bool { return a < b }
	worst := math.Inf(1)
	if obj == assignment.Maximize {
		better = func(a, b float64) bool { return a > b }
		worst = math.Inf(-1)
	}

	size := 1 << n
	dp := make([]float64, size)
	for mask := 1; mask < size; mask++ {
		dp[mask] = worst
	}

	var mask, i, j, next int
	var cand float64
	for mask = 0; mask < size; mask++ {
		i = bits.OnesCount(uint(mask))
		if i >= n {
			continue
		}
		for j = 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				continue
			}
			next = mask | 1<<j
			cand = dp[mask] + cost[i][j]
			if better(cand, dp[next]) {
				dp[next] = cand
			}
		}
	}

	return dp[size-1]
}

// randomMatrix fills an n×n matrix with uniform values in [lo, hi).
func randomMatrix(rng *rand.Rand, n int, lo, hi float64) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = lo + rng.Float64()*(hi-lo)
		}
	}

	return m
}

// cloneRows deep-copies a matrix for mutation checks.
func cloneRows(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i := range src {
		out[i] = append([]float64(nil), src[i]...)
	}

	return out
}

// requireClose asserts |want-got| ≤ absTol + relTol·|want|.
func requireClose(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, want, got, absTol+relTol*math.Abs(want), msgAndArgs...)
}

// requirePermutation asserts that asg is a permutation of 0..n-1.
func requirePermutation(t *testing.T, asg []int, n int) {
	t.Helper()
	require.Len(t, asg, n)
	sorted := append([]int(nil), asg...)
	sort.Ints(sorted)
	for k := 0; k < n; k++ {
		require.Equal(t, k, sorted[k], "assignment %v is not a permutation", asg)
	}
}
