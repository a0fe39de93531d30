package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bcparks/scrape-cleanup/mapping"
	"github.com/bcparks/scrape-cleanup/slugs"
)

func newSlugsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slugs [orcs...]",
		Short: "Print the park page table or resolve park identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			table := slugs.Default()

			if len(args) == 0 {
				for _, e := range table.Entries() {
					fmt.Fprintf(out, "%d\t%s\n", e.ORCS, mapping.ParkURL(e.Slug))
				}
				return nil
			}

			for _, arg := range args {
				orcs, err := strconv.Atoi(arg)
				if err != nil {
					return failed("invalid orcs %q", arg)
				}
				if slug, ok := table.Resolve(orcs); ok {
					fmt.Fprintf(out, "%d\t%s\n", orcs, mapping.ParkURL(slug))
				} else {
					fmt.Fprintf(out, "%d\t-\n", orcs)
				}
			}
			return nil
		},
	}
}
