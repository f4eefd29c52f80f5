package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the tenant's resources interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Browse(cmd.Context(), runOptions(cmd))
		},
	}
}
