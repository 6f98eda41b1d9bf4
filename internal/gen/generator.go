// Package gen orchestrates a generation run: registry loading and indexing,
// usage collection over the input files, and emission of the declarations
// header. It also owns the run-level collaborators the core pipeline stays
// independent of: input glob expansion, staleness checks and output writing.
package gen

import (
	"bytes"
	"context"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/glgen/internal/collect"
	"github.com/standardbeagle/glgen/internal/config"
	"github.com/standardbeagle/glgen/internal/debug"
	"github.com/standardbeagle/glgen/internal/display"
	"github.com/standardbeagle/glgen/internal/emit"
	"github.com/standardbeagle/glgen/internal/registry"
)

// Summary reports what a run produced.
type Summary struct {
	Functions       int
	Macros          int
	RegistryEntries int

	// Written is false when generation was skipped (output up to date) or
	// the freshly generated content matched the existing file byte for byte.
	Written bool

	// Skipped is true when the staleness check decided not to generate.
	Skipped bool
}

// Generator runs the full pipeline for one configuration.
type Generator struct {
	cfg     *config.Config
	printer *display.Printer
}

// New builds a generator.
func New(cfg *config.Config, printer *display.Printer) *Generator {
	return &Generator{cfg: cfg, printer: printer}
}

// Run performs one generation. Registry failures abort with an error;
// per-input-file problems are warned about and skipped; unresolved symbols
// are warned about per occurrence and excluded from the output.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	inputs, err := ExpandInputs(g.cfg.Inputs, g.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	deps := make([]string, 0, len(inputs)+len(g.cfg.Registry))
	deps = append(deps, g.cfg.Registry...)
	deps = append(deps, inputs...)
	if !g.cfg.Force && !Stale(g.cfg.Output, deps) {
		debug.Logf("gen: %s is up to date", g.cfg.Output)
		return &Summary{Skipped: true}, nil
	}

	buf, err := registry.LoadBuffer(g.cfg.Registry)
	if err != nil {
		return nil, err
	}
	idx, err := registry.Build(buf)
	if err != nil {
		return nil, err
	}

	var suggester *collect.Suggester
	if g.cfg.Suggestions.Enabled {
		suggester = collect.NewSuggester(idx.Names(), g.cfg.Suggestions.Threshold)
	}
	collector := collect.NewCollector(idx, g.cfg.Ignore, suggester)

	funcs, macros := collect.NewSeededSets()
	if err := collector.ScanAll(ctx, inputs, g.cfg.Performance.MaxGoroutines, funcs, macros, g.printer); err != nil {
		return nil, err
	}

	content, err := g.render(idx, funcs, macros)
	if err != nil {
		return nil, err
	}

	written, err := WriteIfChanged(g.cfg.Output, content)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Functions:       funcs.Count(),
		Macros:          macros.Count(),
		RegistryEntries: idx.Count(),
		Written:         written,
	}
	g.printer.Successf("Completed! %d functions - %d defines - %d registry entries",
		summary.Functions, summary.Macros, summary.RegistryEntries)
	return summary, nil
}

// render emits the header twice: a first pass with a zero stamp yields the
// bytes whose digest becomes the generation marker, so the marker depends
// only on the run's inputs and identical inputs reproduce identical output.
func (g *Generator) render(idx *registry.Index, funcs, macros *collect.DiscoveredSet) ([]byte, error) {
	opts := emit.Options{
		Prefix:      g.cfg.Prefix,
		Boilerplate: g.cfg.Boilerplate,
	}

	var probe bytes.Buffer
	if err := emit.Emit(&probe, idx, funcs.Tokens(), macros.Tokens(), opts); err != nil {
		return nil, err
	}
	opts.Stamp = xxhash.Sum64(probe.Bytes())

	var out bytes.Buffer
	out.Grow(probe.Len())
	if err := emit.Emit(&out, idx, funcs.Tokens(), macros.Tokens(), opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
