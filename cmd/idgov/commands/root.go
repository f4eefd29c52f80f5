// Package commands implements the CLI commands for idgov.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/idgov/internal/app"
	"go.trai.ch/idgov/internal/build"
)

// CLI represents the command line interface for idgov.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Aggregate(ctx context.Context, source string, entitlements bool, opts app.RunOptions) error
	Reset(ctx context.Context, source string, opts app.RunOptions) error
	ListSources(ctx context.Context, filter string, opts app.RunOptions) error
	Browse(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "idgov",
		Short:         "Browse and administer identity-governance tenants",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("tenant", "t", "", "Tenant alias from the configuration (default: configured default)")
	rootCmd.PersistentFlags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	rootCmd.PersistentFlags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON lines")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newAggregateCmd())
	rootCmd.AddCommand(c.newResetCmd())
	rootCmd.AddCommand(c.newSourcesCmd())
	rootCmd.AddCommand(c.newBrowseCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// runOptions collects the persistent presentation flags.
func runOptions(cmd *cobra.Command) app.RunOptions {
	tenant, _ := cmd.Flags().GetString("tenant")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	ci, _ := cmd.Flags().GetBool("ci")

	// If --ci is set, override output-mode to "linear"
	if ci {
		outputMode = "linear"
	}

	return app.RunOptions{
		Tenant:     tenant,
		OutputMode: outputMode,
		JSON:       jsonLogs,
	}
}
