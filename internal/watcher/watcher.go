// Package watcher turns filesystem events under the visible tree into a
// coalesced change signal. Only the root and the expanded directories are
// watched; events arriving in a burst are debounced into one signal.
package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required before a change signal
// fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a set of directories and reports changes on a
// buffered channel. The set is replaced wholesale after each resync so
// it always mirrors the expanded directories.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	watched map[string]struct{}
	timer   *time.Timer
	done    chan struct{}
	changes chan struct{}
}

// New creates a started watcher. Call SetDirs to begin watching.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		watched:  make(map[string]struct{}),
		done:     make(chan struct{}),
		changes:  make(chan struct{}, 1),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel that receives one signal per debounced
// burst of filesystem activity.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// SetDirs replaces the watched directory set. Directories that cannot be
// watched (removed between scan and call, permission) are skipped.
func (w *Watcher) SetDirs(dirs []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		next[d] = struct{}{}
	}
	for d := range w.watched {
		if _, ok := next[d]; !ok {
			w.fsw.Remove(d)
			delete(w.watched, d)
		}
	}
	for d := range next {
		if _, ok := w.watched[d]; ok {
			continue
		}
		if err := w.fsw.Add(d); err != nil {
			continue
		}
		w.watched[d] = struct{}{}
	}
}

// Close stops the watcher. The changes channel is not closed; a stopped
// watcher simply goes quiet.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.trigger()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the periodic
			// resync covers anything an event stream misses.
		}
	}
}

// trigger arms (or re-arms) the debounce timer.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	})
}
