package main

import (
	"github.com/spf13/cobra"

	"github.com/bcparks/scrape-cleanup/converter"
	"github.com/bcparks/scrape-cleanup/slugs"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <kind> <source> <destination>",
		Short: "Run a single converter",
		Long: `Runs one built-in converter over a source snapshot and writes the
cleaned document. The exit code reflects this converter only.

Example:
  bcparks-cleanup convert coordinates raw/protectedAreaCoordinates.json clean/protected-area-coordinates.json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := converter.Kind(args[0])
			def, ok := converter.Lookup(kind)
			if !ok {
				return failed("unknown kind %q (see `bcparks-cleanup list`)", args[0])
			}

			c, err := converter.New(converter.Options{
				Kind:        kind,
				Source:      args[1],
				Destination: args[2],
				Table:       def.Table,
				Slugs:       slugs.Default(),
				Policy:      converter.Policy(root.onMissing),
				Indent:      root.indent,
				Logger:      root.logger,
			})
			if err != nil {
				return failed("%w", err)
			}

			res := c.Run(cmd.Context())
			printResults(cmd.OutOrStdout(), []converter.Result{res})
			if res.Err != nil {
				return failed("%s: %w", res.Name, res.Err)
			}
			return nil
		},
	}
}
