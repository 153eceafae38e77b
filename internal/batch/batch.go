// Package batch solves many independent problems on a bounded worker pool.
package batch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/katalvlaran/hungarian/internal/input"
)

// Outcome is the result for one problem. Exactly one of Result and Err is
// meaningful; N is the matrix order when known.
type Outcome struct {
	Problem input.Problem
	Result  assignment.Result
	N       int
	Err     error
	Elapsed time.Duration
}

// Failed reports whether any outcome carries an error.
func Failed(outs []Outcome) bool {
	for _, o := range outs {
		if o.Err != nil {
			return true
		}
	}

	return false
}

// Runner fans problems out to at most Workers goroutines.
type Runner struct {
	Logger  *zap.Logger
	Workers int
	Options []assignment.Option
}

// Run solves every problem and returns outcomes in input order. Problem
// errors never abort the batch; problems not yet started when ctx is done
// get ctx.Err().
func (r *Runner) Run(ctx context.Context, problems []input.Problem) []Outcome {
	return r.each(ctx, problems, func(p input.Problem) Outcome {
		res, err := assignment.Solve(p.Cost, p.Objective, r.Options...)
		return Outcome{Result: res, N: len(res.Assignment), Err: err}
	})
}

// Check validates every problem without solving it.
func (r *Runner) Check(ctx context.Context, problems []input.Problem) []Outcome {
	return r.each(ctx, problems, func(p input.Problem) Outcome {
		n, err := assignment.Validate(p.Cost, p.Objective, r.Options...)
		return Outcome{N: n, Err: err}
	})
}

func (r *Runner) each(ctx context.Context, problems []input.Problem, fn func(input.Problem) Outcome) []Outcome {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	outs := make([]Outcome, len(problems))
	g := errgroup.Group{}
	g.SetLimit(workers)

	for i, p := range problems {
		if err := ctx.Err(); err != nil {
			outs[i] = Outcome{Problem: p, Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outs[i] = Outcome{Problem: p, Err: err}
				return nil
			}

			log.Debug("problem started", zap.String("problem", p.Name),
				zap.Stringer("objective", p.Objective), zap.Int("rows", len(p.Cost)))
			start := time.Now()
			o := fn(p)
			o.Problem = p
			o.Elapsed = time.Since(start)
			if o.Err != nil {
				log.Warn("problem failed", zap.String("problem", p.Name), zap.Error(o.Err))
			} else {
				log.Debug("problem finished", zap.String("problem", p.Name),
					zap.Int("n", o.N), zap.Duration("elapsed", o.Elapsed))
			}
			outs[i] = o

			return nil
		})
	}
	_ = g.Wait()

	return outs
}
