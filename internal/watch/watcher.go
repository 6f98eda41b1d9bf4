// Package watch regenerates the output whenever a watched input or registry
// file changes. It monitors directories with fsnotify, filters events
// through the configured glob patterns and debounces bursts of writes.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/glgen/internal/debug"
)

// Watcher triggers a callback when files relevant to generation change.
type Watcher struct {
	watcher   *fsnotify.Watcher
	patterns  []string // input globs and literal paths
	excludes  []string
	exact     map[string]struct{} // registry and config files, matched exactly
	ignore    map[string]struct{} // the output file; writing it must not retrigger
	debouncer *debouncer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a watcher. patterns are the input files/globs, extra are exact
// files to also watch (registry headers, config file), ignorePath is the
// generated output, onChange receives the debounced set of changed paths.
func New(patterns, excludes, extra []string, ignorePath string, debounce time.Duration, onChange func(paths []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fsw,
		patterns: patterns,
		excludes: excludes,
		exact:    make(map[string]struct{}, len(extra)),
		ignore:   map[string]struct{}{filepath.Clean(ignorePath): {}},
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, path := range extra {
		w.exact[filepath.Clean(path)] = struct{}{}
	}
	w.debouncer = newDebouncer(debounce, onChange)
	return w, nil
}

// Start adds directory watches and begins processing events.
func (w *Watcher) Start() error {
	roots := make(map[string]struct{})
	for _, pattern := range w.patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		roots[filepath.FromSlash(base)] = struct{}{}
	}
	for path := range w.exact {
		roots[filepath.Dir(path)] = struct{}{}
	}

	for root := range roots {
		if err := w.addWatches(root); err != nil {
			return err
		}
	}

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop shuts the watcher down and waits for its goroutine.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.watcher.Close()
	w.debouncer.stop()
	w.wg.Wait()
}

// addWatches watches root and every subdirectory under it. Walk errors on
// individual entries are skipped so one unreadable directory does not kill
// watch mode.
func (w *Watcher) addWatches(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		// A pattern base can be a plain file's directory that is gone;
		// the staleness check surfaces missing files on regeneration.
		return nil
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.excludedDir(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			debug.Logf("watch: cannot watch %s: %v", path, err)
		}
		return nil
	})
}

func (w *Watcher) excludedDir(path string) bool {
	for _, pattern := range w.excludes {
		dirPattern := strings.TrimSuffix(pattern, "/**")
		if ok, err := doublestar.PathMatch(dirPattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			debug.Logf("watch: error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	path := event.Name

	// New directories need their own watch for events beneath them.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !w.excludedDir(path) {
				_ = w.watcher.Add(path)
			}
			return
		}
	}

	if !w.relevant(path) {
		return
	}
	debug.Logf("watch: %s (%v)", path, event.Op)
	w.debouncer.add(path)
}

// relevant reports whether path participates in generation: an exact watched
// file or a match of any input pattern, and never the generated output.
func (w *Watcher) relevant(path string) bool {
	clean := filepath.Clean(path)
	if _, ignored := w.ignore[clean]; ignored {
		return false
	}
	if _, ok := w.exact[clean]; ok {
		return true
	}
	slashPath := filepath.ToSlash(clean)
	for _, pattern := range w.patterns {
		slashPattern := filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(slashPattern, slashPath); err == nil && ok {
			return true
		}
		// Literal path inputs are not patterns; compare directly.
		if filepath.Clean(pattern) == clean {
			return true
		}
	}
	return false
}
