package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vrfctl/internal/engine"
)

var verifyCmdRunner = runVerify

func newVerifyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check VRF definitions without making changes",
		Long: `Verify performs the same reads as apply but never writes. Returns exit code 0
if every VRF matches, 1 if changes are needed, 2 on configuration errors and 3 when
the device could not be read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = true
			opts.Verbose = root.verbose
			opts.JSON = root.json
			opts.Out = cmd.OutOrStdout()
			opts.ErrOut = cmd.ErrOrStderr()

			if err := validateApplyOptions(opts); err != nil {
				return &exitError{code: engine.ExitConfigError, err: err}
			}

			return verifyCmdRunner(cmd.Context(), opts)
		},
	}

	addSourceFlags(cmd, &opts)

	return cmd
}

func runVerify(ctx context.Context, opts applyOptions) error {
	summary, err := reconcile(ctx, opts)
	if summary == nil {
		return err
	}

	code := summary.ExitCode()
	if code == engine.ExitOK {
		return nil
	}
	return &exitError{code: code, err: err}
}
