// Package mediacheck finds corrupted media files by verifying their
// container headers, trading the decoder probe of a full media stack
// for a cheap signature check that still catches truncated and
// zero-byte downloads.
package mediacheck

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rodrigo1392/misc-tools/pkg/fsutil"
)

// ErrUnrecognized is returned when no known container signature
// matches the file header.
var ErrUnrecognized = errors.New("mediacheck: unrecognized container header")

// ErrEmptyFile is returned for zero-length files.
var ErrEmptyFile = errors.New("mediacheck: empty file")

// Failure records one bad file and why it was rejected.
type Failure struct {
	Path   string
	Reason string
}

// Summary tallies a finished scan.
type Summary struct {
	Good     int
	Bad      int
	Failures []Failure
}

// Total returns the number of files inspected.
func (s Summary) Total() int {
	return s.Good + s.Bad
}

// Progress is called after each checked file with the running tally.
type Progress func(done, total int)

// Scan verifies every file under root carrying one of the given
// extensions, descending into subdirectories. Files are checked by
// up to workers goroutines; workers < 1 selects one per CPU. The
// progress callback may be nil.
func Scan(ctx context.Context, root string, exts []string, workers int, progress Progress) (Summary, error) {
	files, err := fsutil.ListWithExtension(root, fsutil.ListOptions{Recursive: true, FullPath: true}, exts...)
	if err != nil {
		return Summary{}, fmt.Errorf("list media files: %w", err)
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	var (
		mu      sync.Mutex
		summary Summary
		done    int
	)

	for _, path := range files {
		group.Go(func() error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			checkErr := Check(path)

			mu.Lock()
			defer mu.Unlock()

			if checkErr != nil {
				summary.Bad++
				summary.Failures = append(summary.Failures, Failure{Path: path, Reason: checkErr.Error()})
			} else {
				summary.Good++
			}

			done++
			if progress != nil {
				progress(done, len(files))
			}

			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return Summary{}, waitErr
	}

	// Workers finish in arbitrary order.
	slices.SortFunc(summary.Failures, func(a, b Failure) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return summary, nil
}

// Check verifies a single file's container header. A nil return means
// the header matches a known container.
func Check(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open media file: %w", err)
	}
	defer file.Close()

	header := make([]byte, sniffLen)

	n, readErr := io.ReadFull(file, header)
	if readErr != nil && !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read media header: %w", readErr)
	}

	if n == 0 {
		return ErrEmptyFile
	}

	if sniff(header[:n]) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnrecognized, filepath.Base(path))
}
