package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vrfctl/internal/engine"
)

var applyCmdRunner = runApply

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile VRF definitions on a device",
		Long: `Apply reads each VRF from the device, computes the minimal change and writes it
with a full-resource PUT. VRFs that already match are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = root.dryRun
			opts.Verbose = root.verbose
			opts.JSON = root.json
			opts.Out = cmd.OutOrStdout()
			opts.ErrOut = cmd.ErrOrStderr()

			if err := validateApplyOptions(opts); err != nil {
				return &exitError{code: engine.ExitConfigError, err: err}
			}

			return applyCmdRunner(cmd.Context(), opts)
		},
	}

	addSourceFlags(cmd, &opts)

	return cmd
}

func runApply(ctx context.Context, opts applyOptions) error {
	summary, err := reconcile(ctx, opts)
	if summary == nil {
		return err
	}

	if summary.HasFailures() {
		return &exitError{code: engine.ExitChanges, err: err}
	}
	return err
}
