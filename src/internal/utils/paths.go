package utils

import "path/filepath"

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir.
// An empty baseDir leaves a relative path untouched so it resolves against the
// working directory when the file sink opens it.
func GetAbsolutePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}

	return filepath.Clean(filepath.Join(baseDir, path))
}
