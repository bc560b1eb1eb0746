// Package project validates target project paths before batch operations.
package project

import "os"

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Missing returns the subsequence of projects that are not existing
// directories, preserving input order. A nil result means every project
// checked out. The check is best-effort: the filesystem can change between
// validation and use.
func Missing(projects []string) []string {
	var missing []string
	for _, p := range projects {
		if !IsDir(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
