package pipeline

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckDirReadable verifies that path exists, is a directory, and can be
// read and traversed by the current process.
func CheckDirReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist", path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%s: insufficient permissions: %w", path, err)
	}
	return nil
}

// CheckDirs runs CheckDirReadable over every directory, returning the
// first failure.
func CheckDirs(paths []string) error {
	for _, path := range paths {
		if err := CheckDirReadable(path); err != nil {
			return err
		}
	}
	return nil
}
