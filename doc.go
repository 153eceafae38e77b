// Package hungarian solves the linear assignment problem: given an n×n
// matrix of costs, pick one cell per row and per column so that the total
// is as small (or, on request, as large) as possible.
//
// 🚀 What is in the module?
//
//	A small, dependency-light solver plus a command-line front end:
//		• Core solver: Kuhn–Munkres with potentials, O(n³), deterministic ties
//		• Matrix storage: dense row-major float64 with a finite-only policy
//		• Inputs: plain grids, YAML and JSON documents with many problems
//		• Outputs: localized text (en, ru), JSON, YAML
//
// ✨ Why use it?
//
//   - Typed errors: every failure matches a sentinel via errors.Is
//   - Pure functions: inputs are never mutated, calls are safe to run concurrently
//   - Exact totals: the total is re-priced on the original matrix
//
// Layout:
//
//	assignment/       solver entry points (Solve, SolveMatrix, Validate, TotalCost)
//	matrix/           dense matrix, builders, validators and row/column reductions
//	internal/config/  viper-backed settings with validation
//	internal/input/   grid and YAML/JSON problem loader
//	internal/batch/   bounded parallel solving of many problems
//	internal/render/  text, JSON and YAML output with message catalogs
//	internal/cli/     cobra commands: solve, check, version
//	cmd/hungarian/    the binary
//
// Quick example:
//
//	res, _ := assignment.Solve([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	}, assignment.Minimize)
//	// res.Assignment == [1 0 2], res.Total == 5
//
//	go install github.com/katalvlaran/hungarian/cmd/hungarian@latest
package hungarian
