package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long changes to a file settle before its
// callback runs
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher watches files for changes and triggers debounced callbacks
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *slog.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, log *slog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	return &FileWatcher{
		watcher:   watcher,
		log:       log,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for each of files, replacing any earlier
// callback for the same file. The callback receives the absolute path.
// On error no file of the call stays watched or changes its callback.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	previous := make(map[string]func(string))
	var added []string
	rollback := func() {
		for _, absPath := range added {
			delete(fw.callbacks, absPath)
			if err := fw.watcher.Remove(absPath); err != nil {
				fw.log.Warn("failed to remove watch", "path", absPath, "err", err)
			}
		}
		for absPath, cb := range previous {
			fw.callbacks[absPath] = cb
		}
	}

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			rollback()
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if cb, watched := fw.callbacks[absPath]; watched {
			if _, seen := previous[absPath]; !seen && !slices.Contains(added, absPath) {
				previous[absPath] = cb
			}
		} else {
			if err := fw.watcher.Add(absPath); err != nil {
				rollback()
				return fmt.Errorf("failed to watch %s: %w", absPath, err)
			}
			added = append(added, absPath)
		}
		fw.callbacks[absPath] = callback
	}

	return nil
}

// Unwatch stops watching file
func (fw *FileWatcher) Unwatch(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, watched := fw.callbacks[absPath]; !watched {
		return nil
	}
	delete(fw.callbacks, absPath)
	if timer, ok := fw.timers[absPath]; ok {
		timer.Stop()
		delete(fw.timers, absPath)
	}
	return fw.watcher.Remove(absPath)
}

// Watched reports whether file currently has a callback
func (fw *FileWatcher) Watched(file string) bool {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return false
	}
	fw.mu.Lock()
	defer fw.mu.Unlock()
	_, ok := fw.callbacks[absPath]
	return ok
}

// Start processes events until ctx is done or the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.log.Warn("file watcher error", "err", err)
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for filePath
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.log.Debug("file changed", "path", filePath)
		callback(filePath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
