package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hungarian/internal/batch"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Validate problems without solving them",
		Long: `Parse the input and run the solver's input checks (square shape, size
limit, finite cells) on every problem without solving it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command, args []string) error {
	r, problems, err := prepare(opts, cmd, args)
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Logger:  opts.Logger,
		Workers: opts.Config.Workers,
		Options: opts.Config.SolveOptions(),
	}
	outs := runner.Check(cmd.Context(), problems)
	if err := r.Checked(cmd.OutOrStdout(), outs); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	if batch.Failed(outs) {
		return NewExitError(ExitFailure, "some problems are invalid")
	}

	return nil
}
