// Package commands implements the CLI commands for unibuild.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/unibuild/internal/app"
	"go.trai.ch/unibuild/internal/build"
)

// CLI represents the command line interface for unibuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "unibuild",
		Short:         "Fetch and build a super-project and its prerequisites",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newOutputsCmd())
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

// SetOutput sets the writer for command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
