package fileutil

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// hashBuffer keeps the read buffer small so large products hash with a
// low memory footprint.
const hashBuffer = 128 * 1024

// MD5Sum streams the file at path through MD5 and returns the hex digest.
// MD5 is the fixed digest of the archive manifest format, not a security
// boundary.
func MD5Sum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := md5.New()
	if _, err := io.CopyBuffer(hasher, file, make([]byte, hashBuffer)); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
