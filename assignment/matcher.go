package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

// matcher is the Kuhn–Munkres core: one shortest augmenting path per row,
// driven by row potentials u and column potentials v.
//
// All scratch arrays have n+1 slots. Index 0 is the root sentinel: column 0
// is the virtual column of the row being inserted, and p[j] == 0 means
// column j is free. Rows and columns are 1-based inside the matcher.
//
// Invariant: C[i-1][j-1] − u[i] − v[j] ≥ 0 for all i, j, with equality on
// every matched edge (complementary slackness).
type matcher struct {
	n    int
	c    [][]float64 // row views of the reduced matrix, 0-based
	u, v []float64   // potentials
	p    []int       // p[j]: row matched to column j, 0 if free; p[0] is the current root
	way  []int       // way[j]: previous column on the best path to j
	minv []float64   // slack of each unexplored column
	used []bool      // explored columns
}

func newMatcher(c *matrix.Dense) (*matcher, error) {
	n := c.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row, err := c.RowView(i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return &matcher{
		n:    n,
		c:    rows,
		u:    make([]float64, n+1),
		v:    make([]float64, n+1),
		p:    make([]int, n+1),
		way:  make([]int, n+1),
		minv: make([]float64, n+1),
		used: make([]bool, n+1),
	}, nil
}

// run inserts rows 1..n in order. Before row i is inserted exactly i-1 rows
// are matched and the potentials satisfy complementary slackness.
//
// Complexity: O(n³).
func (m *matcher) run() error {
	for i := 1; i <= m.n; i++ {
		if err := m.insert(i); err != nil {
			return err
		}
	}

	return nil
}

// insert grows an alternating tree rooted at row i until it reaches a free
// column, then flips the path so row i becomes matched.
func (m *matcher) insert(i int) error {
	var (
		j, j0, j1, i0 int
		cur, delta    float64
		row           []float64
		inf           = math.Inf(1)
	)

	m.p[0] = i
	j0 = 0
	for j = 0; j <= m.n; j++ {
		m.minv[j] = inf
		m.used[j] = false
	}

	for {
		m.used[j0] = true
		i0 = m.p[j0]
		row = m.c[i0-1]
		delta, j1 = inf, 0

		// Relax every unexplored column from row i0 and pick the first
		// column with minimal slack.
		for j = 1; j <= m.n; j++ {
			if m.used[j] {
				continue
			}
			cur = row[j-1] - m.u[i0] - m.v[j]
			if cur < m.minv[j] {
				m.minv[j] = cur
				m.way[j] = j0
			}
			if m.minv[j] < delta {
				delta = m.minv[j]
				j1 = j
			}
		}
		// Only reachable when reduced costs overflowed to +Inf.
		if j1 == 0 {
			return fmt.Errorf("assignment: row %d: no finite augmenting path: %w", i, ErrInvalidValue)
		}

		// Shift potentials so the edge into j1 becomes tight.
		for j = 0; j <= m.n; j++ {
			if m.used[j] {
				m.u[m.p[j]] += delta
				m.v[j] -= delta
			} else {
				m.minv[j] -= delta
			}
		}

		j0 = j1
		if m.p[j0] == 0 {
			break
		}
	}

	// Augment: walk back to the root, shifting each match one step.
	for j0 != 0 {
		j1 = m.way[j0]
		m.p[j0] = m.p[j1]
		j0 = j1
	}

	return nil
}

// match runs the matcher on a reduced matrix and returns the final match
// pointer array p (size n+1, p[0] is scratch).
func match(c *matrix.Dense) ([]int, error) {
	m, err := newMatcher(c)
	if err != nil {
		return nil, err
	}
	if err = m.run(); err != nil {
		return nil, err
	}

	return m.p, nil
}
