package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Supported media file extensions (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".avi":  true,
	".m4v":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".ts":   true,
	".m2ts": true,
	".mpg":  true,
	".mpeg": true,
	".ogv":  true,
}

// IsMedia reports whether path has a supported media extension.
func IsMedia(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover walks inputDir, collects files with media extensions, skips
// hidden files and directories, and returns the paths sorted
// lexicographically for deterministic processing order.
func Discover(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := path != inputDir && strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if !hidden && IsMedia(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
