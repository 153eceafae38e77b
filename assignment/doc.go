// Package assignment solves the square linear assignment problem with the
// Kuhn–Munkres (Hungarian) algorithm.
//
// 🚀 What is the assignment problem?
//
//	Given an n×n matrix where cost[i][j] is the price of giving job j to
//	worker i, pick one job per worker (a permutation) so the total price is
//	as small as possible, or, for profits, as large as possible.
//
// ✨ Key features:
//   - O(n³) shortest-augmenting-path Kuhn–Munkres with dual potentials
//   - Minimize and Maximize objectives (maximize via M − cost inversion)
//   - Row/column reduction before matching
//   - Totals always priced on the caller's original matrix
//   - Eager validation with positional errors (ShapeError, ValueError)
//   - No global state: concurrent calls on independent inputs are safe
//
// ⚙️ Usage:
//
//	res, err := assignment.Solve([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	}, assignment.Minimize)
//	// res.Assignment == [1 0 2], res.Total == 5
//
// Errors:
//   - ErrInvalidShape: some row length differs from the row count.
//   - ErrInvalidValue: some entry is NaN or ±Inf.
//   - ErrUnsolvableObjective: Maximize over an infinite maximum.
//   - ErrTooLarge: n above the WithMaxSize limit.
//
// Tie-breaking is deterministic (first minimal slack in ascending column
// order), so the same input always yields the same permutation; when several
// permutations are optimal only the total is comparable across solvers.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) for the working copy, O(n) scratch
package assignment
