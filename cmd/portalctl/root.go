package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Command-line client for the HR portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newTimelogsCmd())
	cmd.AddCommand(newFinanceCmd())
	cmd.AddCommand(newLeaveCmd())
	cmd.AddCommand(newSettingsCmd())
	cmd.AddCommand(newProfileCmd())
	return cmd
}
