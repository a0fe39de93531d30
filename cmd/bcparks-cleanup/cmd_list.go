package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bcparks/scrape-cleanup/converter"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in converters and their field mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, def := range converter.Definitions() {
				fmt.Fprintf(out, "%s: %s\n", def.Kind, def.Description)
				for _, f := range def.Table {
					req := ""
					if f.Required {
						req = " (required)"
					}
					fmt.Fprintf(out, "  %s -> %s%s\n", f.Source, f.Target, req)
				}
			}
			return nil
		},
	}
}
