// Package fsutil provides filesystem helpers for simulation campaigns:
// natural-ordered listings, file search, size accounting, and the
// name-surgery operations used to version and renumber result files.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

var (
	// ErrFileNotFound is returned when a search yields no matching file.
	ErrFileNotFound = errors.New("fsutil: file not found")

	// ErrNotDirectory is returned when a path exists but is not a directory.
	ErrNotDirectory = errors.New("fsutil: not a directory")
)

// ListOptions controls directory listings.
type ListOptions struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// FullPath reports root-joined paths instead of bare file names.
	FullPath bool
}

// ListFiles lists the files under root, sorted naturally so numbered
// results keep their campaign order ("run2" before "run10").
// Directories are never reported.
func ListFiles(root string, opts ListOptions) ([]string, error) {
	var files []string

	if opts.Recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if opts.FullPath {
				files = append(files, path)
			} else {
				files = append(files, d.Name())
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}

		return strutil.NaturalSort(files), nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if opts.FullPath {
			files = append(files, filepath.Join(root, entry.Name()))
		} else {
			files = append(files, entry.Name())
		}
	}

	return strutil.NaturalSort(files), nil
}

// ListWithExtension lists files under root whose extension matches any of
// exts. Extensions are normalized to a single leading dot, so "csv",
// ".csv" and "..csv" all select *.csv files.
func ListWithExtension(root string, opts ListOptions, exts ...string) ([]string, error) {
	files, err := ListFiles(root, opts)
	if err != nil {
		return nil, err
	}

	normalized := make([]string, len(exts))
	for i, ext := range exts {
		normalized[i] = "." + strings.ReplaceAll(ext, ".", "")
	}

	filtered := make([]string, 0, len(files))

	for _, file := range files {
		for _, ext := range normalized {
			if filepath.Ext(file) == ext {
				filtered = append(filtered, file)

				break
			}
		}
	}

	return filtered, nil
}

// ListWithSubstring lists files under root whose base name contains substr.
func ListWithSubstring(root string, opts ListOptions, substr string) ([]string, error) {
	files, err := ListFiles(root, opts)
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(files))

	for _, file := range files {
		if strings.Contains(filepath.Base(file), substr) {
			filtered = append(filtered, file)
		}
	}

	return filtered, nil
}

// FindFile returns the full paths of every file under root whose base
// name equals name. Returns ErrFileNotFound when there is no match.
func FindFile(root, name string, recursive bool) ([]string, error) {
	files, err := ListFiles(root, ListOptions{Recursive: recursive, FullPath: true})
	if err != nil {
		return nil, err
	}

	matches := make([]string, 0, 1)

	for _, file := range files {
		if filepath.Base(file) == name {
			matches = append(matches, file)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrFileNotFound, name, root)
	}

	return matches, nil
}

// WriteFileList writes the listing of root to a text file, one path per
// line, and returns the path written. An empty txtPath defaults to
// <root>/files_list; the suffix is forced to .txt either way.
func WriteFileList(root, txtPath string, opts ListOptions) (string, error) {
	if txtPath == "" {
		txtPath = filepath.Join(root, "files_list")
	}

	txtPath = strings.TrimSuffix(txtPath, filepath.Ext(txtPath)) + ".txt"

	files, err := ListFiles(root, opts)
	if err != nil {
		return "", err
	}

	content := strings.Join(files, "\n")

	if writeErr := os.WriteFile(txtPath, []byte(content), filePerm); writeErr != nil {
		return "", fmt.Errorf("write file list: %w", writeErr)
	}

	return txtPath, nil
}
