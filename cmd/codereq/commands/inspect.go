package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/codereq/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <request>",
		Short: "Render a request as a markdown transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Show(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <request>",
		Short: "Re-encode a request as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			out, _ := cmd.Flags().GetString("out")

			return c.app.Convert(cmd.Context(), args[0], app.ConvertOptions{
				To:  to,
				Out: out,
			})
		},
	}
	cmd.Flags().StringP("to", "t", app.FormatYAML, "Target format: json or yaml")
	cmd.Flags().StringP("out", "o", "", "Write the record to a file instead of stdout")
	return cmd
}

func (c *CLI) newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <request>",
		Short: "Record a request in the store and print its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Save(cmd.Context(), args[0])
			return err
		},
	}
}

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <request>",
		Short: "List the dependencies of a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Deps(cmd.Context(), args[0])
		},
	}
}
