package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PhlyingPhalanges/sierpinski"
)

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available fractals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tSEED\tMAPS\tMAX ITERATIONS\tMAX POINTS")
			for _, k := range sierpinski.Kinds() {
				sys, err := k.System()
				if err != nil {
					return err
				}
				limit := menuLimit[k]
				size, _ := sys.Size(limit)
				fmt.Fprintf(tw, "%v\t%d\t%d\t%d\t%d\n", k, len(sys.Seed), len(sys.Maps), limit, size)
			}
			return tw.Flush()
		},
	}
}
