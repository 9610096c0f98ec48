// Package tabular provides the small CSV surface used around result
// post-processing: a column-ordered frame, overwrite-guarded saves,
// and the PEER strong-motion record reformatter.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
)

// Permissions for written CSV files.
const filePerm = 0o600

// Column is a named column of string cells.
type Column struct {
	Name  string
	Cells []string
}

// Frame is an ordered collection of named columns.
type Frame struct {
	Columns []Column
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// AddColumn appends a named column.
func (f *Frame) AddColumn(name string, cells []string) {
	f.Columns = append(f.Columns, Column{Name: name, Cells: cells})
}

// Column returns the named column, or nil when absent.
func (f *Frame) Column(name string) *Column {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i]
		}
	}

	return nil
}

// Header returns the column names in order.
func (f *Frame) Header() []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}

	return names
}

// Rows returns the length of the longest column.
func (f *Frame) Rows() int {
	rows := 0
	for _, col := range f.Columns {
		rows = max(rows, len(col.Cells))
	}

	return rows
}

// Records returns the cell rows, short columns padded with empty cells.
func (f *Frame) Records() [][]string {
	rows := f.Rows()
	records := make([][]string, rows)

	for i := range records {
		record := make([]string, len(f.Columns))

		for j, col := range f.Columns {
			if i < len(col.Cells) {
				record[j] = col.Cells[i]
			}
		}

		records[i] = record
	}

	return records
}

// ReadCSV loads a CSV file into a frame. With header set, the first
// row names the columns; otherwise columns are named by their index.
// Ragged rows are tolerated and padded with empty cells.
func ReadCSV(path string, header bool) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	frame := NewFrame()
	if len(records) == 0 {
		return frame, nil
	}

	var names []string
	if header {
		names = records[0]
		records = records[1:]
	}

	width := len(names)
	for _, record := range records {
		width = max(width, len(record))
	}

	for i := range width {
		name := strconv.Itoa(i)
		if i < len(names) {
			name = names[i]
		}

		cells := make([]string, len(records))
		for j, record := range records {
			if i < len(record) {
				cells[j] = record[i]
			}
		}

		frame.AddColumn(name, cells)
	}

	return frame, nil
}

// WriteCSV writes the frame to path atomically. withHeader controls
// the leading column-name row.
func (f *Frame) WriteCSV(path string, withHeader bool) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer pending.Cleanup()

	writer := csv.NewWriter(pending)

	if withHeader {
		writeErr := writer.Write(f.Header())
		if writeErr != nil {
			return fmt.Errorf("write header: %w", writeErr)
		}
	}

	for _, record := range f.Records() {
		writeErr := writer.Write(record)
		if writeErr != nil {
			return fmt.Errorf("write record: %w", writeErr)
		}
	}

	writer.Flush()

	if flushErr := writer.Error(); flushErr != nil {
		return fmt.Errorf("flush csv: %w", flushErr)
	}

	err = pending.CloseAtomicallyReplace()
	if err != nil {
		return fmt.Errorf("replace csv: %w", err)
	}

	return nil
}

// Result describes the outcome of a guarded CSV save.
type Result int

const (
	// ResultSaved means the file did not exist and was written.
	ResultSaved Result = iota
	// ResultSkipped means the file existed and overwrite was off.
	ResultSkipped
	// ResultOverwritten means the file existed and was replaced.
	ResultOverwritten
)

// String names the result for logs and messages.
func (r Result) String() string {
	switch r {
	case ResultSaved:
		return "saved"
	case ResultSkipped:
		return "skipped"
	case ResultOverwritten:
		return "overwritten"
	default:
		return "unknown"
	}
}

// SaveCSV writes the frame to path, normalized to a .csv suffix,
// refusing to replace an existing file unless overwrite is set.
// Returns what happened and the normalized path.
func SaveCSV(frame *Frame, path string, overwrite bool) (Result, string, error) {
	csvPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"

	_, statErr := os.Stat(csvPath)
	exists := statErr == nil

	if exists && !overwrite {
		return ResultSkipped, csvPath, nil
	}

	err := frame.WriteCSV(csvPath, true)
	if err != nil {
		return 0, csvPath, err
	}

	if exists {
		return ResultOverwritten, csvPath, nil
	}

	return ResultSaved, csvPath, nil
}
