package notebook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a notebook change notification.
type EventType int

const (
	// EventPageChanged indicates a page was created or its content
	// changed and should be reindexed.
	EventPageChanged EventType = iota

	// EventPageRemoved indicates a page disappeared and its tasks
	// should be dropped.
	EventPageRemoved

	// EventRescan signals the directory structure itself changed and
	// callers should walk the whole notebook again.
	EventRescan
)

// Event is emitted by Watch when the notebook changes on disk.
type Event struct {
	Type EventType
	Path string // relative page path, empty for rescans
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel; events are dropped rather than blocking the
// watcher, a later rescan picks the changes up.
func (n *Notebook) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("notebook: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "notebook: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(n.Root)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("notebook: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("notebook: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is not ready; keeps
				// filesystem storms from blocking the watcher.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a rescan to keep
				// clients in sync even when we cannot classify
				// the change.
				throttle.Enqueue(Event{Type: EventRescan}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "notebook: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventRescan}, send)
						continue
					}
				}

				rel, err := filepath.Rel(n.Root, evt.Name)
				if err != nil || !pageFile(rel) {
					continue
				}
				rel = filepath.ToSlash(rel)

				if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					throttle.Enqueue(Event{Type: EventPageRemoved, Path: rel}, send)
					continue
				}
				throttle.Enqueue(Event{Type: EventPageChanged, Path: rel}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks the root and returns all directories to watch.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventThrottle coalesces rapid change notifications so consumers reindex
// once per burst of filesystem activity instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Path] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, paths := range pending {
		if len(paths) == 0 {
			send(Event{Type: eventType})
			continue
		}
		for path := range paths {
			send(Event{Type: eventType, Path: path})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
