// Package config holds the generator's settings, loaded from an optional
// .glgen.kdl file and overridden by command-line flags.
package config

import (
	"runtime"
)

// DefaultConfigFile is the config filename looked up next to the sources.
const DefaultConfigFile = ".glgen.kdl"

// Config is the full settings surface of a generation run.
type Config struct {
	// Registry lists the vendor API header files, processed in order.
	// Order matters: the first declaration of a duplicated symbol wins.
	Registry []string

	// Inputs lists user source files or doublestar glob patterns.
	Inputs []string

	// Exclude lists glob patterns removed from the expanded input set.
	Exclude []string

	// Output is the generated header path.
	Output string

	// Prefix names the boilerplate symbols; may be empty.
	Prefix string

	// Ignore lists identifiers accepted silently without a registry entry.
	Ignore []string

	// Boilerplate enables the loader glue in the output.
	Boilerplate bool

	// Silent suppresses the success summary.
	Silent bool

	// Force regenerates even when the output is newer than every input.
	Force bool

	Suggestions Suggestions
	Performance Performance
}

// Suggestions configures typo hints for unresolved symbols.
type Suggestions struct {
	Enabled   bool
	Threshold float64
}

// Performance bounds the parallel input scan and the watch debounce.
type Performance struct {
	MaxGoroutines int
	DebounceMs    int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Boilerplate: true,
		Suggestions: Suggestions{
			Enabled:   true,
			Threshold: 0.88,
		},
		Performance: Performance{
			MaxGoroutines: runtime.NumCPU(),
			DebounceMs:    100,
		},
	}
}
