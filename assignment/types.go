package assignment

import (
	"fmt"
	"strings"
)

// Objective selects whether the total is minimized or maximized.
type Objective int

const (
	// Minimize finds the permutation with the smallest total cost (zero value).
	Minimize Objective = iota

	// Maximize finds the permutation with the largest total profit.
	Maximize
)

// String returns "min" or "max".
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "min"
	case Maximize:
		return "max"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

func (o Objective) valid() bool { return o == Minimize || o == Maximize }

// ParseObjective accepts "min", "minimize", "max" and "maximize"
// (case-insensitive, surrounding spaces ignored).
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("%q: %w", s, ErrUnknownObjective)
	}
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Assignment[i] is the column assigned to row i; a permutation of 0..n-1.
	Assignment []int

	// Total is Σ cost[i][Assignment[i]] over the original matrix: a cost
	// under Minimize, a profit under Maximize.
	Total float64
}

// Pairs returns the assignment as (row, column) pairs in row order.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, len(r.Assignment))
	for i, j := range r.Assignment {
		out[i] = [2]int{i, j}
	}

	return out
}

// Option configures Solve.
type Option func(*options)

type options struct {
	maxSize int // 0 = unlimited
}

// WithMaxSize rejects matrices with more than n rows with ErrTooLarge.
// n <= 0 removes the limit, which is also the default.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxSize = n
	}
}

func gatherOptions(user ...Option) options {
	var o options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
