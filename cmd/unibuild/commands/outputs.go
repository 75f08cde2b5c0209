package commands

import "github.com/spf13/cobra"

func (c *CLI) newOutputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outputs NAME",
		Short: "Print the files a snapshot build of a unit discovered, as a units.yml override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.WithOutput(cmd.OutOrStdout())
			return c.app.Outputs(cmd.Context(), args[0])
		},
	}
}
