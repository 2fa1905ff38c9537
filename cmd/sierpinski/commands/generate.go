package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/PhlyingPhalanges/sierpinski"
	"github.com/PhlyingPhalanges/sierpinski/internal/pointio"
)

func generateCmd() *cobra.Command {
	kind := sierpinski.Carpet
	var (
		iterations int
		format     string
		allRounds  bool
		unbounded  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the points of a fractal after n iterations",
		Example: `  sierpinski generate --kind Gasket --iterations 3
  sierpinski generate -k carpet -n 2 --format json --all-rounds`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := pointio.Format(format)
			if !slices.Contains(pointio.Formats(), f) {
				return fmt.Errorf("unknown format %q (want one of %v)", format, pointio.Formats())
			}
			if err := checkIterations(kind, iterations, unbounded); err != nil {
				return err
			}

			var (
				rounds []pointio.Round
				opts   []sierpinski.ExpandOption
			)
			if allRounds {
				opts = append(opts, sierpinski.WithRoundFunc(func(round int, pts []sierpinski.Point) {
					rounds = append(rounds, pointio.Round{Index: round, Points: pts})
				}))
			}

			pts, err := sierpinski.GenerateContext(cmd.Context(), kind, iterations, opts...)
			if err != nil {
				return fmt.Errorf("generate %v: %w", kind, err)
			}
			if !allRounds {
				rounds = []pointio.Round{{Index: iterations, Points: pts}}
			}

			return pointio.Write(cmd.OutOrStdout(), f, rounds)
		},
	}

	cmd.Flags().VarP(kindValue{&kind}, "kind", "k", "fractal to generate (Carpet or Gasket)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1, "number of expansion rounds")
	cmd.Flags().StringVarP(&format, "format", "f", string(pointio.FormatCSV), "output format: csv or json")
	cmd.Flags().BoolVar(&allRounds, "all-rounds", false, "print every round from 0 to n")
	cmd.Flags().BoolVar(&unbounded, "unbounded", false, "allow iteration counts above the per-kind limit")
	return cmd
}
