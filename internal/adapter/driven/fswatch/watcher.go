// Package fswatch implements the ChangeNotifier port with fsnotify.
package fswatch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ChangeNotifier = (*Watcher)(nil)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher signals changes to a single file. It watches the file's parent
// directory so that atomic replace-by-rename saves are still observed.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a Watcher for path. A non-positive debounce uses
// DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
	}
}

// Watch blocks until ctx is canceled, calling onChange once per burst of
// create, write, rename or remove events on the watched file. It returns nil
// when ctx is canceled.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() {
		if closeErr := fw.Close(); closeErr != nil {
			w.logger.Error("error closing file watcher", "error", closeErr)
		}
	}()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching records file", "path", w.path, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	stopTimer(timer)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("records file event", "path", event.Name, "op", event.Op.String())
			stopTimer(timer)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}

// stopTimer stops t and drains its channel if it already fired.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
