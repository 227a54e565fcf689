// Package scanner discovers reference images in a directory.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExts are the recognized image extensions, lower-cased.
var ImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// IsImageName reports whether name has a recognized image extension.
// The comparison is case-insensitive. A leading dot starts a hidden name,
// not an extension, so ".png" has none.
func IsImageName(name string) bool {
	return ImageExts[strings.ToLower(filepath.Ext(strings.TrimPrefix(name, ".")))]
}

// ListImages returns the names of regular image files directly inside dir,
// sorted lexicographically. Subdirectories and other files are skipped.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !IsImageName(e.Name()) {
			continue
		}
		if !isRegular(filepath.Join(dir, e.Name()), e) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// isRegular follows symlinks so linked images still count as files.
func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
