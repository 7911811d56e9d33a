package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches directory trees recursively and emits a unit signal per
// relevant filesystem event.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan struct{}
}

// NewWatcher creates a watcher over the given root directories. Roots
// that do not exist are skipped with a warning.
func NewWatcher(roots ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fw: fw, events: make(chan struct{}, 16)}

	for _, root := range roots {
		if st, err := os.Stat(root); err != nil || !st.IsDir() {
			slog.Warn("Watch root missing, skipping", "path", root)
			continue
		}
		if err := w.addRecursive(root); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

// Events returns the change signal channel.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Run pumps fsnotify events into the signal channel until ctx is
// canceled. Newly created directories are added to the watch set so
// nested new content is picked up.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ignorable(ev.Name) {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err := w.addRecursive(ev.Name); err != nil {
						slog.Warn("Failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			select {
			case w.events <- struct{}{}:
			default: // a signal is already pending; coalescing is fine
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", "error", err)
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error { return w.fw.Close() }

// ignorable filters editor temp files and hidden paths.
func ignorable(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".tmp")
}
