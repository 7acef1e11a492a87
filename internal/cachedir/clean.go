package cachedir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Clean removes every direct child of dir, leaving the directory itself in
// place. A missing path or a non-directory is a no-op. Per-child failures
// are collected rather than aborting the sweep, so one stubborn entry
// cannot stop the rest; the aggregate error is informational and safe to
// log and ignore.
func Clean(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list cache directory %s: %w", dir, err)
	}

	var errs []error
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := os.RemoveAll(child); err != nil {
				errs = append(errs, fmt.Errorf("remove %s: %w", child, err))
			}
			continue
		}
		// Files and symlinks. A concurrent removal is not an error.
		if err := os.Remove(child); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove %s: %w", child, err))
		}
	}
	return errors.Join(errs...)
}
