// Package fsutil provides filesystem helpers shared by the configuration
// and store loading code.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// File and directory permission constants.
const (
	// FileModeDefault is the mode for regular files. -rw-r--r--
	FileModeDefault = 0o644
	// DirModeDefault is the mode for directories. drwxr-xr-x
	DirModeDefault = 0o755
)

// EnsureDir creates a directory and all necessary parent directories if
// they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't
// exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// CreateFilePerm creates a new file with the specified permissions,
// truncating it if it already exists.
func CreateFilePerm(name string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
}

// WriteFileAtomic writes data to a file by way of a temporary sibling and a
// rename, so readers never observe a partially written file.
func WriteFileAtomic(path string, write func(*os.File) error) error {
	tempPath := path + ".tmp"
	file, err := CreateFilePerm(tempPath, FileModeDefault)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tempPath, err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to close %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
