package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/rodrigo1392/misc-tools/pkg/fsutil"
	"github.com/rodrigo1392/misc-tools/pkg/mathutil"
	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// Report summarizes the .log files of a parametric campaign.
type Report struct {
	// Numbers are the model numbers found, in natural listing order.
	Numbers []int

	// Consecutive is true when the numbers form an unbroken run.
	Consecutive bool

	// Missing are the positions where the number run breaks.
	Missing []int

	// Incomplete are the logs whose final status is not COMPLETED.
	Incomplete []string
}

// OK reports whether every model is present and every job completed.
func (r Report) OK() bool {
	return r.Consecutive && len(r.Incomplete) == 0
}

// CheckLogs inspects the .log files directly under dir. The model
// number of each log is the last number in its path; the run must be
// consecutive and every log's last line must end with COMPLETED.
func CheckLogs(dir string) (Report, error) {
	logs, err := fsutil.ListWithExtension(dir, fsutil.ListOptions{FullPath: true}, "log")
	if err != nil {
		return Report{}, fmt.Errorf("list logs: %w", err)
	}

	report := Report{Numbers: make([]int, 0, len(logs))}

	for _, logPath := range logs {
		key, numErr := strutil.LastNumberKey(logPath)
		if numErr != nil {
			return Report{}, fmt.Errorf("model number of %q: %w", logPath, numErr)
		}

		report.Numbers = append(report.Numbers, int(key))
	}

	report.Consecutive, report.Missing = mathutil.CheckConsecutive(report.Numbers)

	for _, logPath := range logs {
		done, readErr := jobCompleted(logPath)
		if readErr != nil {
			return Report{}, readErr
		}

		if !done {
			report.Incomplete = append(report.Incomplete, logPath)
		}
	}

	return report, nil
}

// jobCompleted reports whether the last token of the log's last line
// is COMPLETED.
func jobCompleted(path string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read log %q: %w", path, err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")

	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) == 0 {
		return false, nil
	}

	return fields[len(fields)-1] == "COMPLETED", nil
}
