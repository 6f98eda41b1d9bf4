package main

import (
	"context"
	"time"

	"github.com/standardbeagle/glgen/internal/config"
	"github.com/standardbeagle/glgen/internal/display"
	"github.com/standardbeagle/glgen/internal/gen"
	"github.com/standardbeagle/glgen/internal/watch"
)

// runWatch performs an initial generation, then stays resident and
// regenerates whenever an input, registry or config file changes.
func runWatch(ctx context.Context, configPath string, cfg *config.Config, generator *gen.Generator, printer *display.Printer) error {
	if _, err := generator.Run(ctx); err != nil {
		return err
	}

	// Regenerations are serialized through this channel; a change burst
	// arriving mid-run collapses into one pending trigger.
	trigger := make(chan struct{}, 1)
	onChange := func(paths []string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	extra := append([]string{configPath}, cfg.Registry...)
	debounce := time.Duration(cfg.Performance.DebounceMs) * time.Millisecond
	watcher, err := watch.New(cfg.Inputs, cfg.Exclude, extra, cfg.Output, debounce, onChange)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	printer.Successf("Watching for changes (Ctrl-C to stop)")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			if _, err := generator.Run(ctx); err != nil {
				// Registry-level failures end the watch; a broken
				// registry cannot recover without a config change.
				return err
			}
		}
	}
}
