package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/glosskit/glosskit-cli/internal/logger"
)

// Watcher re-runs an operation whenever the corpus file changes on
// disk. Editors often replace files on save, so the parent directory is
// watched and events are filtered to the corpus path. A token-bucket
// limiter collapses the bursts of events a single save produces.
type Watcher struct {
	path     string
	limiter  *rate.Limiter
	onChange func(ctx context.Context) error
}

// NewWatcher creates a watcher for the corpus at path. onChange runs
// after each debounced change; its error stops the watch loop.
func NewWatcher(path string, onChange func(ctx context.Context) error) *Watcher {
	return &Watcher{
		path: path,
		// At most two re-runs per second, regardless of event bursts.
		limiter:  rate.NewLimiter(rate.Limit(2), 1),
		onChange: onChange,
	}
}

// Run blocks until ctx is cancelled or onChange fails.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("Watching %s", w.path)

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.limiter.Allow() {
				logger.Debug("Debounced %s", event.Op)
				continue
			}
			logger.Section("Corpus Changed")
			logger.Debug("Event: %s", event)
			if err := w.onChange(ctx); err != nil {
				return err
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}
