// Package watch re-runs a merge whenever the source document changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"platform-config/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a function each time a file is written.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func()
}

// New creates a watcher for path. The parent directory is watched so that
// editors replacing the file through a rename are noticed.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	path = filepath.Clean(path)

	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:  w,
		path:     path,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Run blocks until ctx is done. onChange is called from this goroutine, so
// runs never overlap and cancellation is only observed between runs.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	logging.Info().Str("path", w.path).Msg("Watching for changes")

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != w.path {
				continue
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fire = time.After(w.debounce)
			}
		case <-fire:
			fire = nil

			logging.Info().Str("path", w.path).Msg("Source document changed")
			w.onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			logging.Error().Err(err).Msg("Watcher error")
		}
	}
}
