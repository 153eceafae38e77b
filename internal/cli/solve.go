package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hungarian/internal/batch"
	"github.com/katalvlaran/hungarian/internal/input"
	"github.com/katalvlaran/hungarian/internal/render"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve every problem in the input",
		Long: `Solve every assignment problem found in FILE, or in stdin when FILE is
omitted or "-".

Each problem is reported with its assignment, 1-based pairs and total.
A failing problem is reported in place and does not stop the others; the
exit code is then 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runSolve(opts *RootOptions, cmd *cobra.Command, args []string) error {
	r, problems, err := prepare(opts, cmd, args)
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Logger:  opts.Logger,
		Workers: opts.Config.Workers,
		Options: opts.Config.SolveOptions(),
	}
	outs := runner.Run(cmd.Context(), problems)
	if err := r.Solved(cmd.OutOrStdout(), outs); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	if batch.Failed(outs) {
		return NewExitError(ExitFailure, "some problems could not be solved")
	}

	return nil
}

// prepare builds the renderer and loads the problems named by args.
func prepare(opts *RootOptions, cmd *cobra.Command, args []string) (*render.Renderer, []input.Problem, error) {
	r, err := render.New(opts.Config.Format, opts.Config.Lang)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "output", err)
	}
	obj, err := opts.Config.SolveObjective()
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "objective", err)
	}

	var (
		in   io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "open input", err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	problems, err := input.Load(in, input.Format(opts.Config.InputFormat), obj)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, name, &localizedError{msg: r.Message(err), err: err})
	}
	opts.Logger.Info("input loaded", zap.String("source", name), zap.Int("problems", len(problems)))

	return r, problems, nil
}
