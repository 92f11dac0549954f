package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/codereq/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <request-file>",
		Short: "Regenerate the script whenever the request file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			guard, _ := cmd.Flags().GetString("guard")
			language, _ := cmd.Flags().GetString("language")

			return c.app.Watch(cmd.Context(), args[0], app.WatchOptions{
				Out:      out,
				Guard:    guard,
				Language: language,
			})
		},
	}
	addScriptFlags(cmd)
	return cmd
}
