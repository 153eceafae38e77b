package assignment

import "fmt"

// compose inverts the match pointer array into a row-indexed assignment and
// prices it against the original, untouched cost matrix.
//
// Complexity: O(n).
func compose(p []int, cost [][]float64) Result {
	n := len(cost)
	asg := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			asg[p[j]-1] = j - 1
		}
	}

	var total float64
	for i := 0; i < n; i++ {
		total += cost[i][asg[i]]
	}

	return Result{Assignment: asg, Total: total}
}

// TotalCost sums cost[i][assignment[i]] in row order. It is independent of
// Solve and is useful for pricing a given permutation.
//
// Errors:
//   - ErrInvalidShape if cost is not square.
//   - ErrNotPermutation if assignment is not a permutation of 0..n-1.
//
// Complexity: O(n).
func TotalCost(cost [][]float64, assignment []int) (float64, error) {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return 0, &ShapeError{Row: i, Len: len(row), Want: n}
		}
	}
	if len(assignment) != n {
		return 0, fmt.Errorf("length %d, want %d: %w", len(assignment), n, ErrNotPermutation)
	}

	seen := make([]bool, n)
	var total float64
	for i, j := range assignment {
		if j < 0 || j >= n {
			return 0, fmt.Errorf("row %d → column %d out of range: %w", i, j, ErrNotPermutation)
		}
		if seen[j] {
			return 0, fmt.Errorf("column %d assigned twice: %w", j, ErrNotPermutation)
		}
		seen[j] = true
		total += cost[i][j]
	}

	return total, nil
}
