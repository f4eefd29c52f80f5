package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <source>",
		Short: "Reset a source: accounts first, then entitlements",
		Long: "Reset removes all accounts loaded from the source and, only if the " +
			"account reset succeeds cleanly, removes its entitlements as well.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Reset(cmd.Context(), args[0], runOptions(cmd))
		},
	}
}
