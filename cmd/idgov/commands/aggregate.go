package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate <source>",
		Short: "Aggregate accounts or entitlements from a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entitlements, _ := cmd.Flags().GetBool("entitlements")
			return c.app.Aggregate(cmd.Context(), args[0], entitlements, runOptions(cmd))
		},
	}
	cmd.Flags().BoolP("entitlements", "e", false, "Aggregate entitlements instead of accounts")
	return cmd
}
