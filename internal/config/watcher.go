package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk. Editors often
// replace files instead of writing them, so the parent directory is watched
// and events are filtered by name.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce time.Duration
}

func NewWatcher(path string) (*Watcher, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{path: path, fs: fs, debounce: defaultWatchDebounce}, nil
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) SetDebounce(d time.Duration) {
	if d >= 0 {
		w.debounce = d
	}
}

// Run blocks until ctx is done, calling fn with each reloaded config or
// with the error that prevented loading it.
func (w *Watcher) Run(ctx context.Context, fn func(Config, error)) error {
	defer w.fs.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			fn(Config{}, err)
		case <-fire:
			fire = nil
			fn(LoadConfigFrom(w.path))
		}
	}
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}
