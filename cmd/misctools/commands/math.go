package commands

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rodrigo1392/misc-tools/pkg/mathutil"
	"github.com/rodrigo1392/misc-tools/pkg/tabular"
)

// defaultRoundBase is the multiple campaign scripts round forces and
// stresses to.
const defaultRoundBase = 5

// defaultInterpPoints is the resample resolution for interpolated
// result curves.
const defaultInterpPoints = 10000

// ErrBadMatrix is returned when a matrix flag cannot be parsed.
var ErrBadMatrix = errors.New("malformed matrix")

// NewMathCommand groups the numeric helper subcommands.
func NewMathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "math",
		Short: "Unit conversions, rounding and campaign numerics",
	}

	cmd.AddCommand(
		newMathConvertCommand(),
		newMathRoundCommand(),
		newMathPrimesCommand(),
		newMathConsecutiveCommand(),
		newMathIntegrateCommand(),
		newMathInterpCommand(),
		newMathSolveCommand(),
	)

	return cmd
}

func newMathConvertCommand() *cobra.Command {
	var (
		inverse bool
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <value> <conversion>",
		Short: "Convert a quantity between engineering units",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				tbl := newTable()
				tbl.AppendHeader(table.Row{"Conversion", "Factor"})

				for _, name := range slices.Sorted(maps.Keys(mathutil.Conversions)) {
					tbl.AppendRow(table.Row{name, mathutil.Conversions[name]})
				}

				fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

				return nil
			}

			if len(args) != 2 {
				return errConvertUsage
			}

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse number %q: %w", args[0], err)
			}

			converted, convErr := mathutil.Convert(value, args[1], inverse)
			if convErr != nil {
				return convErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", converted)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&inverse, "inverse", "i", false, "Divide by the factor instead of multiplying")
	cmd.Flags().BoolVar(&list, "list", false, "List the known conversions")

	return cmd
}

// errConvertUsage is returned when convert is called without both a
// value and a conversion name.
var errConvertUsage = errors.New("convert needs a value and a conversion name, or --list")

func newMathRoundCommand() *cobra.Command {
	var (
		base int
		down bool
	)

	cmd := &cobra.Command{
		Use:   "round <value>",
		Short: "Round a value to a multiple of a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse number %q: %w", args[0], err)
			}

			rounded := mathutil.RoundUpTo(value, base)
			if down {
				rounded = mathutil.RoundDownTo(value, base)
			}

			fmt.Fprintln(cmd.OutOrStdout(), rounded)

			return nil
		},
	}

	cmd.Flags().IntVarP(&base, "base", "b", defaultRoundBase, "Base multiple to round to")
	cmd.Flags().BoolVar(&down, "down", false, "Round down instead of up")

	return cmd
}

func newMathPrimesCommand() *cobra.Command {
	var upTo bool

	cmd := &cobra.Command{
		Use:   "primes <n>",
		Short: "Generate prime numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse number %q: %w", args[0], err)
			}

			primes := mathutil.Primes(n)
			if upTo {
				primes = mathutil.PrimesUpTo(n)
			}

			fmt.Fprintln(cmd.OutOrStdout(), joinInts(primes))

			return nil
		},
	}

	cmd.Flags().BoolVar(&upTo, "up-to", false, "Primes below n instead of the first n primes")

	return cmd
}

func newMathConsecutiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "consecutive <n>...",
		Short: "Check that numbers form an unbroken run",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseIntArgs(args)
			if err != nil {
				return err
			}

			ok, gaps := mathutil.CheckConsecutive(numbers)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CURRENT NUMBERS: %s\n", joinInts(numbers))

			if !ok {
				warnColor.Fprintf(out, "WARNING: RUN BREAKS AT POSITIONS %s\n", joinInts(gaps))

				return nil
			}

			fmt.Fprintln(out, "Consecutive run")

			return nil
		},
	}
}

func newMathIntegrateCommand() *cobra.Command {
	var (
		xCol   string
		yCol   string
		header bool
	)

	cmd := &cobra.Command{
		Use:   "integrate <file.csv>",
		Short: "Integrate a result curve with the trapezoid rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := tabular.ReadCSV(args[0], header)
			if err != nil {
				return err
			}

			xs, xErr := columnFloats(frame, xCol)
			if xErr != nil {
				return xErr
			}

			ys, yErr := columnFloats(frame, yCol)
			if yErr != nil {
				return yErr
			}

			area, intErr := mathutil.Trapezoid(xs, ys)
			if intErr != nil {
				return intErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", area)

			return nil
		},
	}

	cmd.Flags().StringVar(&xCol, "x-col", "0", "Abscissa column")
	cmd.Flags().StringVar(&yCol, "y-col", "1", "Ordinate column")
	cmd.Flags().BoolVar(&header, "header", false, "First row names the columns")

	return cmd
}

func newMathInterpCommand() *cobra.Command {
	var (
		points    int
		xCol      string
		yCol      string
		header    bool
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "interp <file.csv>",
		Short: "Resample a result curve with an Akima spline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := tabular.ReadCSV(args[0], header)
			if err != nil {
				return err
			}

			xs, xErr := columnFloats(frame, xCol)
			if xErr != nil {
				return xErr
			}

			ys, yErr := columnFloats(frame, yCol)
			if yErr != nil {
				return yErr
			}

			newXs, newYs, interpErr := mathutil.AkimaResample(xs, ys, points)
			if interpErr != nil {
				return interpErr
			}

			resampled := tabular.NewFrame()
			resampled.AddColumn("X", floatCells(newXs))
			resampled.AddColumn("Y", floatCells(newYs))

			if output == "" {
				output = interpOutputPath(args[0])
			}

			return saveFrame(cmd.OutOrStdout(), resampled, output, overwrite)
		},
	}

	cmd.Flags().IntVarP(&points, "points", "n", defaultInterpPoints, "Number of resampled points")
	cmd.Flags().StringVar(&xCol, "x-col", "0", "Abscissa column")
	cmd.Flags().StringVar(&yCol, "y-col", "1", "Ordinate column")
	cmd.Flags().BoolVar(&header, "header", false, "First row names the columns")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Target CSV (default: <file>_interp.csv)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the target if it exists")

	return cmd
}

func newMathSolveCommand() *cobra.Command {
	var (
		matrixFlag string
		vectorFlag string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the linear system A·x = b",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matrix, err := parseMatrix(matrixFlag)
			if err != nil {
				return err
			}

			vector, vecErr := parseFloatArgs(strings.Split(vectorFlag, ","))
			if vecErr != nil {
				return vecErr
			}

			solution, solveErr := mathutil.SolveLinear(matrix, vector)
			if solveErr != nil {
				return solveErr
			}

			fmt.Fprintln(cmd.OutOrStdout(), joinFloats(solution))

			return nil
		},
	}

	cmd.Flags().StringVarP(&matrixFlag, "matrix", "a", "", "Coefficient rows, semicolon-separated: 1,2;3,4")
	cmd.Flags().StringVarP(&vectorFlag, "vector", "b", "", "Right-hand side, comma-separated: 5,6")

	mustMarkRequired(cmd, "matrix")
	mustMarkRequired(cmd, "vector")

	return cmd
}

// interpOutputPath derives the resampled curve path from the input.
func interpOutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_interp.csv"
}

// parseMatrix reads rows separated by semicolons, cells by commas.
func parseMatrix(s string) ([][]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadMatrix)
	}

	rowSpecs := strings.Split(s, ";")
	matrix := make([][]float64, len(rowSpecs))

	for i, rowSpec := range rowSpecs {
		row, err := parseFloatArgs(strings.Split(rowSpec, ","))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrBadMatrix, i+1, err)
		}

		matrix[i] = row
	}

	return matrix, nil
}

// joinInts renders ints space-separated for terminal output.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}

	return strings.Join(parts, " ")
}
