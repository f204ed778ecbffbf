// Package orchestrator coordinates the icon renaming workflow for iconrename.
package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"iconrename/internal/classifier"
	"iconrename/internal/config"
	"iconrename/internal/organizer"
	"iconrename/internal/output"
	"iconrename/internal/scanner"
)

// Outcome is what happened to one SVG file.
type Outcome string

const (
	OutcomePreserved Outcome = "preserved"
	OutcomeRenamed   Outcome = "renamed"
	OutcomeSkipped   Outcome = "skipped" // target name already taken
	OutcomeFailed    Outcome = "failed"  // filesystem error during the rename
)

// FileResult represents the outcome of processing a single SVG file.
type FileResult struct {
	Name            string
	SourcePath      string
	NewName         string // Target name for renamed and skipped files
	DestinationPath string
	Pattern         string // Matched preserved pattern
	Outcome         Outcome
	Error           error
}

// RunResult collects the per-file results of one pass over a directory.
type RunResult struct {
	Directory string
	Files     []FileResult // In processing order
	Ignored   int          // Entries skipped silently (not regular files, not SVG)
}

// Count returns the number of files with the given outcome.
func (r *RunResult) Count(outcome Outcome) int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == outcome {
			n++
		}
	}
	return n
}

// Orchestrator runs the renamer over a directory and reports each outcome.
type Orchestrator struct {
	config *config.Configuration
	out    *output.Output

	// mu serializes passes and watch-mode renames.
	mu sync.Mutex
	// produced holds paths created by our own renames so watch mode can skip their events.
	produced map[string]struct{}
}

// New creates an Orchestrator. A nil cfg uses the default naming convention.
func New(cfg *config.Configuration, out *output.Output) *Orchestrator {
	if cfg == nil {
		cfg = config.DefaultConfiguration()
	}
	if out == nil {
		out = output.New(output.DefaultConfig())
	}
	return &Orchestrator{
		config:   cfg,
		out:      out,
		produced: make(map[string]struct{}),
	}
}

// Run processes every immediate entry of directory once.
// Per-file problems are reported and recorded in the result, never returned;
// the error is only set when the directory itself cannot be listed.
func (o *Orchestrator) Run(directory string) (*RunResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	result := &RunResult{Directory: directory}

	opts := scanner.DefaultScanOptions()
	opts.SymlinkPolicy = o.config.SymlinkPolicy
	opts.OnSkip = func(name, reason string) {
		result.Ignored++
		o.out.Verbose("Skipping %s (%s)", name, reason)
	}

	files, err := scanner.ScanWithOptions(directory, opts)
	if err != nil {
		return result, fmt.Errorf("failed to scan %s: %w", directory, err)
	}

	o.out.StartProgress(len(files))
	for i, file := range files {
		o.out.UpdateProgress(i+1, "")
		fileResult, ok := o.processFile(file)
		if !ok {
			result.Ignored++
			continue
		}
		result.Files = append(result.Files, fileResult)
	}
	o.out.EndProgress()

	return result, nil
}

// processFile classifies one file and acts on it. ok is false for files
// outside the naming convention, which are skipped without a message.
func (o *Orchestrator) processFile(file scanner.FileEntry) (result FileResult, ok bool) {
	classification := classifier.Classify(file.Name, o.config)

	result = FileResult{
		Name:       file.Name,
		SourcePath: file.FullPath,
	}

	switch {
	case classification.IsIgnored():
		o.out.Verbose("Skipping %s (no %s extension)", file.Name, o.config.Extension)
		return result, false

	case classification.IsPreserved():
		result.Outcome = OutcomePreserved
		result.Pattern = classification.Pattern
		o.out.Info("Preserved: %s", file.Name)
		return result, true
	}

	result.NewName = classification.TargetName

	moved, err := organizer.Organize(file, classification)
	if err != nil {
		result.Error = err
		if organizer.IsCollision(err) {
			result.Outcome = OutcomeSkipped
			o.out.Warn("%s already exists, skipping rename of %s", classification.TargetName, file.Name)
			return result, true
		}
		result.Outcome = OutcomeFailed
		o.out.Error("cannot rename %s: %s", file.Name, renameCause(err))
		return result, true
	}

	result.Outcome = OutcomeRenamed
	result.DestinationPath = moved.DestinationPath
	o.produced[moved.DestinationPath] = struct{}{}
	o.out.Success("Renamed:", "%s -> %s", moved.OldName, moved.NewName)
	return result, true
}

// ProcessPath applies the renamer to a single file, as watch mode does for new files.
// ok is false when path is not a regular file, is outside the naming convention,
// or was created by an earlier rename of this Orchestrator.
func (o *Orchestrator) ProcessPath(path string) (result FileResult, ok bool, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return FileResult{}, false, err
	}
	if _, seen := o.produced[absPath]; seen {
		delete(o.produced, absPath)
		return FileResult{}, false, nil
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileResult{}, false, nil
		}
		return FileResult{}, false, err
	}
	if !info.Mode().IsRegular() {
		return FileResult{}, false, nil
	}
	if o.config.SymlinkPolicy == config.SymlinkPolicySkip {
		if linfo, err := os.Lstat(absPath); err == nil && linfo.Mode()&os.ModeSymlink != 0 {
			return FileResult{}, false, nil
		}
	}

	result, ok = o.processFile(scanner.FileEntry{
		Name:     filepath.Base(absPath),
		FullPath: absPath,
	})
	return result, ok, nil
}

// renameCause returns the underlying error text for a rename failure.
func renameCause(err error) string {
	var renameErr *organizer.RenameError
	if errors.As(err, &renameErr) {
		return renameErr.Cause()
	}
	return err.Error()
}
