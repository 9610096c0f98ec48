package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rodrigo1392/misc-tools/pkg/strutil"
)

// backupPrefix marks the saved previous version of a file.
const backupPrefix = "old_"

var lastDigitRun = regexp.MustCompile(`\d+`)

// RenameStem returns path with its file name stem replaced, keeping the
// directory and extension.
func RenameStem(path, stem string) string {
	return filepath.Join(filepath.Dir(path), stem+filepath.Ext(path))
}

// AddPrefix returns path with prefix prepended to the file name stem.
func AddPrefix(path, prefix string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	return filepath.Join(filepath.Dir(path), prefix+stem+ext)
}

// AddSuffix returns path with suffix appended to the file name stem,
// before the extension.
func AddSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	return filepath.Join(filepath.Dir(path), stem+suffix+ext)
}

// Renumber renames the file at path, adding delta to the last digit run
// of its base name: Renumber("out/job_12.log", 1) moves the file to
// out/job_13.log. Only the final path element is rewritten, so numbered
// directory components are never touched. Returns the new path.
func Renumber(path string, delta int) (string, error) {
	base := filepath.Base(path)

	locs := lastDigitRun.FindAllStringIndex(base, -1)
	if len(locs) == 0 {
		return "", fmt.Errorf("%w: %q", strutil.ErrNoDigits, base)
	}

	start, end := locs[len(locs)-1][0], locs[len(locs)-1][1]

	number, err := strconv.Atoi(base[start:end])
	if err != nil {
		return "", fmt.Errorf("parse digit run %q: %w", base[start:end], err)
	}

	newBase := base[:start] + strconv.Itoa(number+delta) + base[end:]
	newPath := filepath.Join(filepath.Dir(path), newBase)

	if renameErr := os.Rename(path, newPath); renameErr != nil {
		return "", fmt.Errorf("rename %s: %w", path, renameErr)
	}

	return newPath, nil
}

// RenumberAll renumbers each path in order and returns the new paths.
// It stops at the first failure, returning the renames done so far
// together with the error.
func RenumberAll(paths []string, delta int) ([]string, error) {
	renamed := make([]string, 0, len(paths))

	for _, path := range paths {
		newPath, err := Renumber(path, delta)
		if err != nil {
			return renamed, err
		}

		renamed = append(renamed, newPath)
	}

	return renamed, nil
}

// SyncBackup keeps an old_-prefixed backup of the file at path in sync.
// When the backup already exists it is restored over path, reverting any
// changes since the backup was taken; otherwise the current file becomes
// the backup. Either way the returned path is safe to modify afterwards.
// Returns ErrFileNotFound when neither file exists.
func SyncBackup(path string) (string, error) {
	backup := AddPrefix(path, backupPrefix)

	if _, err := os.Stat(backup); err == nil {
		if copyErr := copyFile(backup, path); copyErr != nil {
			return "", fmt.Errorf("restore backup: %w", copyErr)
		}

		return path, nil
	}

	if _, err := os.Stat(path); err == nil {
		if copyErr := copyFile(path, backup); copyErr != nil {
			return "", fmt.Errorf("create backup: %w", copyErr)
		}

		return path, nil
	}

	return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// copyFile copies src over dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("open target: %w", err)
	}

	if _, copyErr := io.Copy(out, in); copyErr != nil {
		out.Close()

		return fmt.Errorf("copy data: %w", copyErr)
	}

	if closeErr := out.Close(); closeErr != nil {
		return fmt.Errorf("close target: %w", closeErr)
	}

	return nil
}
