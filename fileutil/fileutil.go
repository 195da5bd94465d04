package fileutil

import (
	"os"
)

// FileExists returns true if a file or directory with the given path exists.
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// IsDir returns true if a directory with the given path exists.
func IsDir(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory with the given path, along with any missing
// parents. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
