package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/codereq/internal/app"
)

func (c *CLI) newFlakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flake <request>",
		Short: "Package a request as a Nix flake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			noStage, _ := cmd.Flags().GetBool("no-stage")
			run, _ := cmd.Flags().GetBool("run")

			return c.app.Flake(cmd.Context(), args[0], app.FlakeOptions{
				Dir:     dir,
				NoStage: noStage,
				Run:     run,
			})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Directory to write the flake to (defaults to the working directory)")
	cmd.Flags().Bool("no-stage", false, "Do not stage the generated files in git")
	cmd.Flags().BoolP("run", "r", false, "Run the flake with nix after writing it")
	return cmd
}
