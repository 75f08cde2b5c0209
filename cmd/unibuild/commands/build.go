package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/unibuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	opts := &app.RunOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch sources and build every out-of-date unit in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), *opts)
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func (c *CLI) newPlanCmd() *cobra.Command {
	opts := &app.RunOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which units a build would rebuild, and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.app.WithOutput(cmd.OutOrStdout())
			return c.app.Plan(cmd.Context(), *opts)
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *app.RunOptions) {
	cmd.Flags().BoolVar(&opts.RebuildAll, "rebuild-all", false, "Rebuild every unit")
	cmd.Flags().StringArrayVar(&opts.Rebuild, "rebuild", nil, "Rebuild the named unit (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Snapshot, "get-snapshot", nil,
		"Record the files the named unit's build adds to the project (repeatable)")
	cmd.Flags().BoolVar(&opts.ReconfigureQt, "reconf-qt", false, "Clean and reconfigure Qt before building it")
	cmd.Flags().BoolVar(&opts.ForceDownload, "force-download", false, "Re-fetch and re-extract every source, then rebuild the units that have one")
}
