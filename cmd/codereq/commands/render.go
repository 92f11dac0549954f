package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/codereq/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <request>",
		Short: "Generate the fail-fast Python script for a request",
		Long: "Generate the fail-fast Python script for a request.\n\n" +
			"The request is a .json, .yaml or .yml file, or the id of a stored request.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			guard, _ := cmd.Flags().GetString("guard")
			language, _ := cmd.Flags().GetString("language")

			return c.app.Render(cmd.Context(), args[0], app.RenderOptions{
				Out:      out,
				Guard:    guard,
				Language: language,
			})
		},
	}
	addScriptFlags(cmd)
	return cmd
}

// addScriptFlags registers the flags shared by commands that generate a script.
func addScriptFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().String("guard", "", "Name of the guard variable (overrides codereq.yaml)")
	cmd.Flags().String("language", "", "Fence language of echoed code cells (overrides codereq.yaml)")
}
