package orchestrator

import (
	"context"
	"time"

	"iconrename/internal/watcher"
)

// Watch keeps directory in line with the naming convention until ctx is cancelled.
// Each file created in the directory goes through the same steps as Run.
func (o *Orchestrator) Watch(ctx context.Context, directory string) (*watcher.WatchSummary, error) {
	o.mu.Lock()
	clear(o.produced)
	o.mu.Unlock()

	w := watcher.New(o.watchConfig(), o.handleWatchedFile)
	w.OnError = func(err error) {
		o.out.Error("%v", err)
	}
	return w.Run(ctx, directory)
}

func (o *Orchestrator) watchConfig() *watcher.WatchConfig {
	wc := watcher.DefaultWatchConfig()
	if o.config.Watch == nil {
		return wc
	}
	if o.config.Watch.DebounceMs > 0 {
		wc.Debounce = time.Duration(o.config.Watch.DebounceMs) * time.Millisecond
	}
	if o.config.Watch.StableThresholdMs != nil {
		wc.StableThreshold = time.Duration(*o.config.Watch.StableThresholdMs) * time.Millisecond
	}
	if len(o.config.Watch.IgnorePatterns) > 0 {
		wc.IgnorePatterns = o.config.Watch.IgnorePatterns
	}
	return wc
}

// handleWatchedFile adapts ProcessPath to the watcher's handler contract.
func (o *Orchestrator) handleWatchedFile(path string) (watcher.Result, error) {
	result, ok, err := o.ProcessPath(path)
	if err != nil {
		o.out.Error("cannot process %s: %v", path, err)
		return watcher.Skipped, err
	}
	if !ok {
		return watcher.Ignored, nil
	}
	switch result.Outcome {
	case OutcomeRenamed:
		return watcher.Renamed, nil
	case OutcomePreserved:
		return watcher.Preserved, nil
	default:
		return watcher.Skipped, nil
	}
}
