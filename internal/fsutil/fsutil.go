// Package fsutil holds small filesystem helpers shared by the CLI.
package fsutil

import "os"

// CheckFileExist reports whether filePath exists on disk.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
