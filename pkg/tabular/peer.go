package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rodrigo1392/misc-tools/pkg/fsutil"
)

// DefaultTimeStep is the sampling step assumed for PEER records.
const DefaultTimeStep = 0.005

// ErrNonPositiveStep is returned when the sampling step is zero or
// negative.
var ErrNonPositiveStep = errors.New("tabular: non-positive time step")

// ReformatPEER rewrites a PEER strong-motion record laid out in
// horizontal runs into a two-column time series. The input is read as
// a headerless CSV, possibly ragged, and flattened row by row; the
// trailing two values fall off against the generated time column,
// matching the historical layout of these records. The result lands
// next to the input as <stem>_corrected.csv with header "T,DATA" and
// T[i] = i*timeStep. Returns the output path.
func ReformatPEER(path string, timeStep float64) (string, error) {
	if timeStep <= 0 {
		return "", fmt.Errorf("%w: %v", ErrNonPositiveStep, timeStep)
	}

	csvPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"

	flat, err := flattenRecord(csvPath)
	if err != nil {
		return "", err
	}

	rows := max(len(flat)-2, 0)

	times := make([]string, rows)
	for i := range times {
		times[i] = strconv.FormatFloat(float64(i)*timeStep, 'g', -1, 64)
	}

	frame := NewFrame()
	frame.AddColumn("T", times)
	frame.AddColumn("DATA", flat[:rows])

	outPath := fsutil.AddSuffix(csvPath, "_corrected")

	err = frame.WriteCSV(outPath, true)
	if err != nil {
		return "", err
	}

	return outPath, nil
}

// flattenRecord reads a headerless CSV and serializes its cells row by
// row, keeping each row's actual width.
func flattenRecord(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	var flat []string

	for _, record := range records {
		for _, cell := range record {
			flat = append(flat, strings.TrimSpace(cell))
		}
	}

	return flat, nil
}
