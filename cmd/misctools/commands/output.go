package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rodrigo1392/misc-tools/pkg/tabular"
)

// ErrColumnNotFound is returned when a CSV column name does not exist
// in the loaded file.
var ErrColumnNotFound = errors.New("column not found")

// warnColor highlights the warnings the campaign scripts print when a
// save is skipped or a job looks wrong. okColor marks all-clear lines.
var (
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
)

// newTable returns a table writer in the house style.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	return tbl
}

// parseFloatArgs converts positional arguments to floats.
func parseFloatArgs(args []string) ([]float64, error) {
	values := make([]float64, len(args))

	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", arg, err)
		}

		values[i] = value
	}

	return values, nil
}

// parseIntArgs converts positional arguments to ints.
func parseIntArgs(args []string) ([]int, error) {
	values := make([]int, len(args))

	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", arg, err)
		}

		values[i] = value
	}

	return values, nil
}

// columnFloats extracts a CSV column as floats.
func columnFloats(frame *tabular.Frame, name string) ([]float64, error) {
	col := frame.Column(name)
	if col == nil {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	values := make([]float64, len(col.Cells))

	for i, cell := range col.Cells {
		value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}

		values[i] = value
	}

	return values, nil
}

// floatCells formats floats as CSV cells.
func floatCells(values []float64) []string {
	cells := make([]string, len(values))
	for i, value := range values {
		cells[i] = strconv.FormatFloat(value, 'g', -1, 64)
	}

	return cells
}

// joinFloats renders floats space-separated for terminal output.
func joinFloats(values []float64) string {
	return strings.Join(floatCells(values), " ")
}

// saveFrame writes a frame through the guarded CSV save and prints the
// campaign-script status lines for each outcome.
func saveFrame(out io.Writer, frame *tabular.Frame, path string, overwrite bool) error {
	result, csvPath, err := tabular.SaveCSV(frame, path, overwrite)
	if err != nil {
		return fmt.Errorf("save csv: %w", err)
	}

	switch result {
	case tabular.ResultSkipped:
		warnColor.Fprintln(out, "WARNING: CSV FILE EXISTS")
		stem := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
		fmt.Fprintf(out, "%s CSV FILE NOT SAVED\n", stem)
	case tabular.ResultOverwritten:
		fmt.Fprintln(out, "CSV FILE OVERWRITTEN")
		fmt.Fprintln(out, csvPath)
	case tabular.ResultSaved:
		fmt.Fprintln(out, "*** CSV FILE SAVED ***")
		fmt.Fprintln(out, csvPath)
	}

	return nil
}
