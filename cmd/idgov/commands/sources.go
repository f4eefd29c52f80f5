package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Work with the tenant's sources",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the tenant's sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			return c.app.ListSources(cmd.Context(), filter, runOptions(cmd))
		},
	}
	listCmd.Flags().StringP("filter", "f", "", "Server-side listing filter")

	cmd.AddCommand(listCmd)
	return cmd
}
