package fsutil

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
)

const bytesPerMiB = 1 << 20

// EnsureDir creates the directory at path, parents included, if it does
// not exist yet. Reports whether it created anything. Returns
// ErrNotDirectory when path exists as a regular file.
func EnsureDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s", ErrNotDirectory, path)
		}

		return false, nil
	}

	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if mkdirErr := os.MkdirAll(path, dirPerm); mkdirErr != nil {
		return false, fmt.Errorf("create dir %s: %w", path, mkdirErr)
	}

	return true, nil
}

// TreeSize returns the byte total of the files under root.
// Non-recursive counts only the top level.
func TreeSize(root string, recursive bool) (int64, error) {
	var total int64

	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}

			total += info.Size()

			return nil
		})
		if err != nil {
			return 0, fmt.Errorf("walk %s: %w", root, err)
		}

		return total, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("read dir %s: %w", root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			return 0, fmt.Errorf("stat %s: %w", entry.Name(), infoErr)
		}

		total += info.Size()
	}

	return total, nil
}

// SizeMB converts a byte count to mebibytes rounded to three decimals,
// the resolution result reports use.
func SizeMB(bytes int64) float64 {
	mb := float64(bytes) / float64(bytesPerMiB)

	return math.Round(mb*1000) / 1000
}

// WalkLevel walks the tree rooted at root, descending at most level
// directory levels below it: level 1 descends into the root's immediate
// subdirectories but no further. Entries one level past the cut are
// still reported, matching what a bounded walk of their parent shows.
func WalkLevel(root string, level int, fn fs.WalkDirFunc) error {
	root = filepath.Clean(root)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, d, err)
		}

		walkErr := fn(path, d, nil)
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() && path != root && pathDepth(root, path) > level {
			return fs.SkipDir
		}

		return nil
	})
}

// pathDepth counts how many levels under root the path sits, with
// direct children at depth 1.
func pathDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}
