package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
	json    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vrfctl",
		Short:         "vrfctl reconciles VRF definitions on IOS-XE devices over RESTCONF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging and print payload diffs")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Compute changes without writing to the device")
	cmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Output results in JSON format")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
