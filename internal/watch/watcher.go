// Package watch triggers a rebuild when configuration documents change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a fixed set of files. It watches their directories, which
// survives editors that replace files on save.
type Watcher struct {
	files    map[string]bool
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(ctx context.Context)
}

// New watches paths and calls onChange, at most once per debounce window,
// after any of them is written, created or renamed.
func New(paths []string, debounce time.Duration, onChange func(ctx context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, berrors.WatchError("create", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		files:    make(map[string]bool, len(paths)),
		watcher:  fsw,
		debounce: debounce,
		onChange: onChange,
	}

	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, berrors.WatchError("resolve", fmt.Errorf("%s: %w", p, err))
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, berrors.WatchError("add", fmt.Errorf("%s: %w", dir, err))
		}
		slog.Debug("Watching directory", logfields.Path(dir))
	}
	return w, nil
}

// Run processes events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	// Reset discards a pending fire, so a burst of events yields one rebuild.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Configuration change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			w.onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
