package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"perft-bench/internal/backend"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered perft backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			for _, b := range backend.All() {
				fmt.Fprintf(tw, "%s\t%s\n", b.Name(), b.Description())
			}

			return tw.Flush()
		},
	}
}
