package batch_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/katalvlaran/hungarian/internal/batch"
	"github.com/katalvlaran/hungarian/internal/input"
)

func problems(n int) []input.Problem {
	out := make([]input.Problem, n)
	for k := range out {
		out[k] = input.Problem{
			Name:      fmt.Sprint(k + 1),
			Objective: assignment.Minimize,
			Cost:      [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, float64(k)}},
		}
	}

	return out
}

func TestRun_OrderAndResults(t *testing.T) {
	ps := problems(20)
	r := &batch.Runner{Workers: 3}

	outs := r.Run(context.Background(), ps)
	require.Len(t, outs, len(ps))
	for k, o := range outs {
		require.NoError(t, o.Err)
		assert.Equal(t, ps[k].Name, o.Problem.Name)
		assert.Equal(t, 3, o.N)
		want, err := assignment.Solve(ps[k].Cost, ps[k].Objective)
		require.NoError(t, err)
		assert.Equal(t, want, o.Result)
	}
	assert.False(t, batch.Failed(outs))
}

func TestRun_ErrorsStayPerProblem(t *testing.T) {
	ps := problems(3)
	ps[1].Cost = [][]float64{{1, 2}, {3}}
	ps[2].Cost = [][]float64{{math.NaN()}}

	outs := (&batch.Runner{Workers: 2}).Run(context.Background(), ps)
	require.NoError(t, outs[0].Err)
	require.ErrorIs(t, outs[1].Err, assignment.ErrInvalidShape)
	require.ErrorIs(t, outs[2].Err, assignment.ErrInvalidValue)
	assert.Zero(t, outs[1].Result)
	assert.True(t, batch.Failed(outs))
}

func TestRun_Options(t *testing.T) {
	r := &batch.Runner{Workers: 1, Options: []assignment.Option{assignment.WithMaxSize(2)}}
	outs := r.Run(context.Background(), problems(1))
	require.ErrorIs(t, outs[0].Err, assignment.ErrTooLarge)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outs := (&batch.Runner{Workers: 4}).Run(ctx, problems(5))
	for _, o := range outs {
		require.ErrorIs(t, o.Err, context.Canceled)
		assert.NotEmpty(t, o.Problem.Name)
	}
}

func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ps := problems(2)
	ps[1].Cost = [][]float64{{1, 2}}

	(&batch.Runner{Logger: zap.New(core), Workers: 1}).Run(context.Background(), ps)

	assert.Equal(t, 2, logs.FilterMessage("problem started").Len())
	assert.Equal(t, 1, logs.FilterMessage("problem finished").Len())
	failed := logs.FilterMessage("problem failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	assert.Equal(t, "2", failed[0].ContextMap()["problem"])
}

func TestCheck(t *testing.T) {
	ps := problems(2)
	ps[1].Cost[0][0] = math.Inf(1)
	ps[1].Objective = assignment.Maximize

	outs := (&batch.Runner{Workers: 2}).Check(context.Background(), ps)
	require.NoError(t, outs[0].Err)
	assert.Equal(t, 3, outs[0].N)
	assert.Nil(t, outs[0].Result.Assignment, "check does not solve")
	require.ErrorIs(t, outs[1].Err, assignment.ErrInvalidValue)
	require.ErrorIs(t, outs[1].Err, assignment.ErrUnsolvableObjective)
}
