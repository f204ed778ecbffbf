// Package scanner handles directory scanning for iconrename.
package scanner

import (
	"os"
	"path/filepath"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist or is not a directory.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
	// ReadFailed indicates the directory listing could not be read.
	ReadFailed ScanErrorType = "READ_FAILED"
)

// Symlink policy constants
const (
	SymlinkPolicyFollow = "follow"
	SymlinkPolicySkip   = "skip"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return string(e.Type) + ": " + e.Path + " (" + e.Err.Error() + ")"
	}
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ScanOptions configures scanning behavior.
type ScanOptions struct {
	SymlinkPolicy string // "follow" or "skip"
	// OnSkip, when set, is called for every entry that is not reported as a file.
	OnSkip func(name, reason string)
}

// DefaultScanOptions returns the default scan options.
// Symlinks are followed so a link to a regular file counts as a file.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		SymlinkPolicy: SymlinkPolicyFollow,
	}
}

// FileEntry represents a file found during scanning.
type FileEntry struct {
	Name     string // Filename only
	FullPath string // Absolute path
}

// Scan enumerates regular files in the given directory without recursion.
// This is a convenience wrapper around ScanWithOptions with default options.
func Scan(directory string) ([]FileEntry, error) {
	return ScanWithOptions(directory, DefaultScanOptions())
}

// ScanWithOptions enumerates the immediate entries of directory and returns
// the regular files among them, in the order the filesystem listing yields.
// Directories, special files, broken symlinks and symlinks to anything other
// than a regular file are left out.
func ScanWithOptions(directory string, opts ScanOptions) ([]FileEntry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, &ScanError{Type: DirectoryNotFound, Path: directory, Err: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Type: DirectoryNotFound, Path: directory}
	}

	f, err := os.Open(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, &ScanError{Type: ReadFailed, Path: directory, Err: err}
	}
	defer f.Close()

	// Readdir keeps the listing order instead of sorting it.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &ScanError{Type: ReadFailed, Path: directory, Err: err}
	}

	skip := opts.OnSkip
	if skip == nil {
		skip = func(string, string) {}
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		fullPath := filepath.Join(directory, entry.Name())

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			if opts.SymlinkPolicy == SymlinkPolicySkip {
				skip(entry.Name(), "symlink")
				continue
			}
			target, err := os.Stat(fullPath)
			if err != nil {
				skip(entry.Name(), "broken symlink")
				continue
			}
			mode = target.Mode().Type()
		}

		if mode.IsDir() {
			skip(entry.Name(), "directory")
			continue
		}
		if !mode.IsRegular() {
			skip(entry.Name(), "not a regular file")
			continue
		}

		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}
		files = append(files, FileEntry{
			Name:     entry.Name(),
			FullPath: absPath,
		})
	}

	return files, nil
}
