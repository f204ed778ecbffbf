// Package watcher keeps a directory in line with the naming convention by
// handing newly created files to the renamer.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig contains watcher settings.
type WatchConfig struct {
	Debounce        time.Duration // Quiet period after the last event for a path
	StableThreshold time.Duration // How long the size must stay unchanged before handling
	IgnorePatterns  []string      // Glob patterns to ignore; DefaultIgnorePatterns when empty
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{
		Debounce:        500 * time.Millisecond,
		StableThreshold: time.Second,
		IgnorePatterns:  DefaultIgnorePatterns(),
	}
}

// Result is what the handler did with a file.
type Result int

const (
	// Ignored files are not counted (not an icon, or produced by an earlier rename).
	Ignored Result = iota
	Renamed
	Preserved
	Skipped
)

// FileHandler processes one file. An error counts the file as skipped.
type FileHandler func(path string) (Result, error)

// WatchSummary contains stats from the watch session.
type WatchSummary struct {
	FilesRenamed   int
	FilesPreserved int
	FilesSkipped   int
	Duration       time.Duration
}

// Watcher monitors one directory for new files.
type Watcher struct {
	config    *WatchConfig
	handler   FileHandler
	filter    *FileFilter
	stability *StabilityChecker
	debouncer *Debouncer

	// OnError receives fsnotify and stability errors; they never stop the watcher.
	OnError func(err error)

	fsWatcher *fsnotify.Watcher
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startTime time.Time

	mu             sync.Mutex
	running        bool
	filesRenamed   int
	filesPreserved int
	filesSkipped   int
}

// New creates a new Watcher. If config is nil, DefaultWatchConfig is used.
func New(config *WatchConfig, handler FileHandler) *Watcher {
	if config == nil {
		config = DefaultWatchConfig()
	}
	w := &Watcher{
		config:    config,
		handler:   handler,
		filter:    NewFileFilter(config.IgnorePatterns),
		stability: NewStabilityChecker(config.StableThreshold),
	}
	w.debouncer = NewDebouncer(config.Debounce, w.handle)
	return w
}

// Start begins watching dir. The watcher runs until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		fsWatcher.Close()
		return err
	}
	if err := fsWatcher.Add(absDir); err != nil {
		fsWatcher.Close()
		return err
	}

	w.mu.Lock()
	w.fsWatcher = fsWatcher
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.startTime = time.Now()
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Run starts the watcher and blocks until ctx is cancelled, then returns the session summary.
func (w *Watcher) Run(ctx context.Context, dir string) (*WatchSummary, error) {
	if err := w.Start(ctx, dir); err != nil {
		return nil, err
	}
	<-ctx.Done()
	return w.Stop(), nil
}

// Stop shuts the watcher down, waits for in-flight files and returns a summary.
func (w *Watcher) Stop() *WatchSummary {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		w.cancel()
		w.debouncer.Stop()
		w.fsWatcher.Close()
		w.wg.Wait()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	summary := &WatchSummary{
		FilesRenamed:   w.filesRenamed,
		FilesPreserved: w.filesPreserved,
		FilesSkipped:   w.filesSkipped,
	}
	if !w.startTime.IsZero() {
		summary.Duration = time.Since(w.startTime)
	}
	return summary
}

// IsRunning returns true between Start and Stop.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// processEvents handles file system events from fsnotify.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Writes restart the debounce timer of a file that is still being copied in.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if w.filter.ShouldIgnore(event.Name) {
				continue
			}
			w.debouncer.Add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// handle runs once a path has been quiet for the debounce delay.
func (w *Watcher) handle(path string) {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	ctx := w.ctx
	w.mu.Unlock()
	defer w.wg.Done()

	if err := w.stability.WaitForStable(ctx, path); err != nil {
		// A file that vanished was renamed or removed by someone else.
		if !errors.Is(err, ErrFileNotFound) && ctx.Err() == nil {
			w.reportError(err)
		}
		return
	}
	if ctx.Err() != nil || w.handler == nil {
		return
	}

	result, err := w.handler(path)

	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case err != nil:
		w.filesSkipped++
	case result == Renamed:
		w.filesRenamed++
	case result == Preserved:
		w.filesPreserved++
	case result == Skipped:
		w.filesSkipped++
	}
}

func (w *Watcher) reportError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
