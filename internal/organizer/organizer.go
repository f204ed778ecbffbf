// Package organizer performs the in-place renames for iconrename.
package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"iconrename/internal/classifier"
	"iconrename/internal/scanner"
)

// RenameErrorType represents the type of rename error.
type RenameErrorType string

const (
	// SourceNotFound indicates the source file disappeared before the rename.
	SourceNotFound RenameErrorType = "SOURCE_NOT_FOUND"
	// DestinationExists indicates a file already exists under the target name.
	DestinationExists RenameErrorType = "DESTINATION_EXISTS"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied RenameErrorType = "PERMISSION_DENIED"
	// RenameFailed covers any other filesystem failure.
	RenameFailed RenameErrorType = "RENAME_FAILED"
	// NotRenamable indicates the classification does not call for a rename.
	NotRenamable RenameErrorType = "NOT_RENAMABLE"
)

// ErrDestinationExists is matched by errors.Is for collisions.
var ErrDestinationExists = errors.New("destination already exists")

// RenameError represents an error that occurred during a rename.
type RenameError struct {
	Type RenameErrorType
	Path string
	Err  error
}

func (e *RenameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying filesystem error text, or the error itself.
func (e *RenameError) Cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}

// RenameResult represents the result of a successful rename.
type RenameResult struct {
	SourcePath      string
	DestinationPath string
	OldName         string
	NewName         string
}

// FileExists checks if anything exists at the given path.
// Symlinks are not followed, so a dangling link still counts as existing.
func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Organize renames file to the target name in classification, within the same directory.
// It refuses to overwrite: if the target name is taken, a DestinationExists error is returned
// and the file is left untouched. The check is not atomic with the rename.
func Organize(file scanner.FileEntry, classification *classifier.Classification) (*RenameResult, error) {
	if !classification.NeedsRename() {
		return nil, &RenameError{
			Type: NotRenamable,
			Path: file.FullPath,
		}
	}

	dir := filepath.Dir(file.FullPath)
	destPath := filepath.Join(dir, classification.TargetName)

	if FileExists(destPath) {
		return nil, &RenameError{
			Type: DestinationExists,
			Path: destPath,
			Err:  ErrDestinationExists,
		}
	}

	if err := os.Rename(file.FullPath, destPath); err != nil {
		return nil, classifyRenameError(file.FullPath, err)
	}

	return &RenameResult{
		SourcePath:      file.FullPath,
		DestinationPath: destPath,
		OldName:         file.Name,
		NewName:         classification.TargetName,
	}, nil
}

// classifyRenameError maps an os.Rename failure to a RenameError.
func classifyRenameError(path string, err error) *RenameError {
	switch {
	case os.IsNotExist(err):
		return &RenameError{Type: SourceNotFound, Path: path, Err: err}
	case os.IsPermission(err):
		return &RenameError{Type: PermissionDenied, Path: path, Err: err}
	default:
		return &RenameError{Type: RenameFailed, Path: path, Err: err}
	}
}

// IsCollision reports whether err is a DestinationExists rename error.
func IsCollision(err error) bool {
	var renameErr *RenameError
	return errors.As(err, &renameErr) && renameErr.Type == DestinationExists
}
