package commands

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/statutil"
	"github.com/rodrigo1392/misc-tools/pkg/tabular"
)

// NewStatsCommand groups the sampling and probability subcommands.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Sampling plans and probability helpers",
	}

	cmd.AddCommand(
		newStatsCDFCommand(),
		newStatsPairsCommand(),
		newStatsHaltonCommand(),
		newStatsMonteCarloCommand(),
		newStatsCodedCommand(),
	)

	return cmd
}

func newStatsCDFCommand() *cobra.Command {
	var (
		col       string
		header    bool
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "cdf <file.csv>",
		Short: "Empirical distribution of a result column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := tabular.ReadCSV(args[0], header)
			if err != nil {
				return err
			}

			values, colErr := columnFloats(frame, col)
			if colErr != nil {
				return colErr
			}

			xs, ps := statutil.EmpiricalCDF(values)

			if output == "" {
				out := cmd.OutOrStdout()
				for i := range xs {
					fmt.Fprintf(out, "%g %g\n", xs[i], ps[i])
				}

				return nil
			}

			cdf := tabular.NewFrame()
			cdf.AddColumn("X", floatCells(xs))
			cdf.AddColumn("P", floatCells(ps))

			return saveFrame(cmd.OutOrStdout(), cdf, output, overwrite)
		},
	}

	cmd.Flags().StringVar(&col, "col", "0", "Column holding the sample")
	cmd.Flags().BoolVar(&header, "header", false, "First row names the columns")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Target CSV (default: print to stdout)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the target if it exists")

	return cmd
}

func newStatsPairsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs <item>...",
		Short: "All unordered pairs of the given items",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, pair := range statutil.PairCombinations(args) {
				fmt.Fprintf(out, "%s %s\n", pair[0], pair[1])
			}

			return nil
		},
	}
}

func newStatsHaltonCommand() *cobra.Command {
	var (
		dims      int
		points    int
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "halton",
		Short: "Halton low-discrepancy sampling plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := statutil.Halton(dims, points)
			if err != nil {
				return err
			}

			return writeSamplePlan(cmd, rows, dims, output, overwrite)
		},
	}

	cmd.Flags().IntVarP(&dims, "dims", "d", 1, "Number of campaign variables")
	cmd.Flags().IntVarP(&points, "points", "n", 1, "Number of sample points")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Target CSV (default: print to stdout)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the target if it exists")

	return cmd
}

func newStatsMonteCarloCommand() *cobra.Command {
	var (
		dims      int
		points    int
		seed      uint64
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Uniform Monte Carlo sampling plan in [-1, 1]",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Seed 0 keeps the global source for a fresh plan per call.
			var src rand.Source
			if seed != 0 {
				src = rand.NewPCG(seed, seed)
			}

			rows := statutil.MonteCarlo(dims, points, src)

			return writeSamplePlan(cmd, rows, dims, output, overwrite)
		},
	}

	cmd.Flags().IntVarP(&dims, "dims", "d", 1, "Number of campaign variables")
	cmd.Flags().IntVarP(&points, "points", "n", 1, "Number of sample points")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed (0 = non-reproducible)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Target CSV (default: print to stdout)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the target if it exists")

	return cmd
}

func newStatsCodedCommand() *cobra.Command {
	var (
		minVal  float64
		maxVal  float64
		toCoded bool
	)

	cmd := &cobra.Command{
		Use:   "coded <value>",
		Short: "Map between coded [-1, 1] and real variable domains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse number %q: %w", args[0], err)
			}

			mapped := statutil.Coded2Data(value, minVal, maxVal)
			if toCoded {
				mapped = statutil.Data2Coded(value, minVal, maxVal)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", mapped)

			return nil
		},
	}

	cmd.Flags().Float64Var(&minVal, "min", 0, "Lower bound of the real domain")
	cmd.Flags().Float64Var(&maxVal, "max", 0, "Upper bound of the real domain")
	cmd.Flags().BoolVar(&toCoded, "to-coded", false, "Map a real value to the coded domain")

	mustMarkRequired(cmd, "min")
	mustMarkRequired(cmd, "max")

	return cmd
}

// writeSamplePlan prints a sampling plan or saves it as a CSV with one
// x<i> column per variable.
func writeSamplePlan(cmd *cobra.Command, rows [][]float64, dims int, output string, overwrite bool) error {
	if output == "" {
		out := cmd.OutOrStdout()
		for _, row := range rows {
			fmt.Fprintln(out, joinFloats(row))
		}

		return nil
	}

	plan := tabular.NewFrame()

	for d := range dims {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = strconv.FormatFloat(row[d], 'g', -1, 64)
		}

		plan.AddColumn(fmt.Sprintf("x%d", d+1), cells)
	}

	return saveFrame(cmd.OutOrStdout(), plan, output, overwrite)
}
