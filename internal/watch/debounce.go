package watch

import (
	"sync"
	"time"
)

// debouncer batches change notifications so a burst of editor writes
// triggers one regeneration instead of one per event.
type debouncer struct {
	mu       sync.Mutex
	paths    map[string]struct{}
	debounce time.Duration
	timer    *time.Timer
	fire     func(paths []string)
}

func newDebouncer(debounce time.Duration, fire func([]string)) *debouncer {
	return &debouncer{
		paths:    make(map[string]struct{}),
		debounce: debounce,
		fire:     fire,
	}
}

// add records a changed path and (re)arms the flush timer.
func (d *debouncer) add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.paths[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.debounce, d.flush)
}

// stop cancels any pending flush. Events pending at shutdown are dropped;
// the run is being torn down anyway.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *debouncer) flush() {
	d.mu.Lock()
	paths := make([]string, 0, len(d.paths))
	for path := range d.paths {
		paths = append(paths, path)
	}
	d.paths = make(map[string]struct{})
	d.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	d.fire(paths)
}
