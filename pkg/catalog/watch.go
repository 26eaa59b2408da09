package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long a burst of file events is coalesced before a reload
// signal is sent.
const WatchDelay = 100 * time.Millisecond

// Watch signals on the returned channel whenever the catalog file at path is
// written, created, renamed, or removed. The directory is watched rather than
// the file so editors that replace files on save keep working. The channel is
// closed once ctx is done or the watcher fails.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	if path == "" {
		return nil, errors.New("catalog: watch path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "catalog: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("catalog: watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	send := func() {
		select {
		case changes <- struct{}{}:
		default:
			// A reload is already queued.
		}
	}

	go func() {
		defer close(changes)
		defer closeWatcher()

		throttle := newThrottle(WatchDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return changes, nil
}

// throttle coalesces rapid events into one call per delay window, measured
// from the first event in the burst. send must not block.
type throttle struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	stopped bool
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay}
}

func (t *throttle) Enqueue(send func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil || t.stopped {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.timer = nil
		if !t.stopped {
			send()
		}
	})
}

func (t *throttle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
