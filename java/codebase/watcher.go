package codebase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dhamidi/outline/config"
)

// Event reports a file that was re-projected or removed.
type Event struct {
	Path    string
	File    *FileInfo // nil when Removed
	Removed bool
}

// FileWatcher re-projects files of a codebase when they change on disk.
// Bursts of filesystem events are coalesced for the configured debounce
// interval before files are re-read.
type FileWatcher struct {
	codebase *Codebase
	config   *config.Config
	watcher  *fsnotify.Watcher
	events   chan Event
	stopCh   chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewFileWatcher(c *Codebase, cfg *config.Config) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		codebase: c,
		config:   cfg,
		watcher:  watcher,
		events:   make(chan Event),
		stopCh:   make(chan struct{}),
	}, nil
}

// Events delivers one Event per re-projected or removed file. The channel
// is closed when the watcher stops.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Start watches every directory under the codebase root and returns. The
// watcher runs until ctx is done or Stop is called.
func (w *FileWatcher) Start(ctx context.Context) error {
	if err := w.addWatches(w.codebase.RootDir()); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.run(ctx)
	return nil
}

// Stop ends watching and waits for the watcher goroutine to exit.
func (w *FileWatcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *FileWatcher) addWatches(root string) error {
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
		return w.watcher.Add(path)
	})
}

func (w *FileWatcher) run(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.events)

	pending := make(map[string]bool)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.handle(event, pending) {
				timer.Reset(w.config.Watch.Debounce.Duration)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warningf("watch: %s", err)
		case <-timer.C:
			if !w.flush(ctx, pending) {
				return
			}
		}
	}
}

// handle records event and reports whether it concerns a selected file.
func (w *FileWatcher) handle(event fsnotify.Event, pending map[string]bool) bool {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addWatches(event.Name); err != nil {
				log.Warningf("watch %s: %s", event.Name, err)
			}
			return false
		}
	}
	if event.Op == fsnotify.Chmod {
		return false
	}
	rel, err := filepath.Rel(w.codebase.RootDir(), event.Name)
	if err != nil || !w.config.Matches(filepath.ToSlash(rel)) {
		return false
	}
	pending[event.Name] = true
	return true
}

// flush re-projects every pending file and emits its event. It returns false
// if the watcher was stopped while emitting.
func (w *FileWatcher) flush(ctx context.Context, pending map[string]bool) bool {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
		delete(pending, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		ev := Event{Path: path}
		prev := w.codebase.GetFile(path)
		info, err := w.codebase.ScanFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			w.codebase.RemoveFile(path)
			ev.Removed = true
		case err != nil:
			log.Warningf("read %s: %s", path, err)
			continue
		case info == prev:
			continue
		default:
			ev.File = info
		}

		select {
		case w.events <- ev:
		case <-ctx.Done():
			return false
		case <-w.stopCh:
			return false
		}
	}
	return true
}
