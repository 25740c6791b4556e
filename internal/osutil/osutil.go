// Package osutil provides cross-platform file system helpers shared across
// dela's internal packages: atomic file writes (for the allowlist store)
// and glob expansion (doublestar, for the .github/workflows/*.{yml,yaml}
// discovery step).
package osutil

import (
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to path by first writing to a temp file in the
// same directory, then renaming over the destination, so a crash mid-write
// never leaves a truncated allowlist on disk.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
