package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns the default patterns for files that are still
// being produced: browser downloads, partial copies and editor swap files.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.partial",
		"*.download",
		"*.crdownload",
		"*.swp",
		"*~",
		".~*",
		".#*",
	}
}

// FileFilter decides which paths the watcher hands to the renamer.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a FileFilter with the given glob patterns.
// If patterns is nil or empty, DefaultIgnorePatterns is used.
func NewFileFilter(patterns []string) *FileFilter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	return &FileFilter{
		patterns: append([]string(nil), patterns...),
	}
}

// ShouldIgnore reports whether the base name of path matches an ignore pattern.
// Glob patterns follow filepath.Match; a bare extension such as ".bak" matches
// any name ending in it, ignoring case.
func (f *FileFilter) ShouldIgnore(path string) bool {
	filename := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}
		if strings.HasPrefix(pattern, ".") && !strings.ContainsAny(pattern, "*?[") {
			if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(pattern)) {
				return true
			}
		}
	}
	return false
}

// Patterns returns a copy of the ignore patterns.
func (f *FileFilter) Patterns() []string {
	return append([]string(nil), f.patterns...)
}
