package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airquant/tradingflow/internal/export"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <state-log.json>",
		Short: "Render a saved state log as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.ExportMarkdown(args[0], output); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("Export complete"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "markdown output path (default: input with .md suffix)")
	return cmd
}
