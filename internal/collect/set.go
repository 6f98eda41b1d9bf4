// Package collect scans user source files for API symbol usage and
// accumulates the deduplicated sets of functions and macros to generate
// declarations for.
package collect

import (
	"github.com/standardbeagle/glgen/internal/types"
)

// Seed symbols the generated initializer depends on unconditionally: the init
// function queries the context version through glGetIntegerv with the two
// version macros, so they must be declared even if no input references them.
var (
	SeedFunctions = []string{"glGetIntegerv"}
	SeedMacros    = []string{"GL_MAJOR_VERSION", "GL_MINOR_VERSION"}
)

// DiscoveredSet is a deduplicated collection of symbol tokens keyed by their
// 32-bit hash, with exact text breaking hash ties. Insertion is idempotent
// and the set only ever grows during a run.
type DiscoveredSet struct {
	byHash map[uint32][]types.Token
	count  int
}

// NewDiscoveredSet returns an empty set.
func NewDiscoveredSet() *DiscoveredSet {
	return &DiscoveredSet{byHash: make(map[uint32][]types.Token)}
}

// NewSeededSets returns the function and macro sets pre-seeded with the
// mandatory symbols.
func NewSeededSets() (funcs, macros *DiscoveredSet) {
	funcs = NewDiscoveredSet()
	for _, name := range SeedFunctions {
		funcs.Add(types.TokenFromString(name))
	}
	macros = NewDiscoveredSet()
	for _, name := range SeedMacros {
		macros.Add(types.TokenFromString(name))
	}
	return funcs, macros
}

// Contains reports whether a token with the same text is already present.
func (s *DiscoveredSet) Contains(tok types.Token) bool {
	for _, existing := range s.byHash[tok.Hash] {
		if existing.Span.Equal(tok.Span) {
			return true
		}
	}
	return false
}

// Add inserts the token; re-adding an already-present symbol is a no-op.
// Reports whether the token was newly inserted.
func (s *DiscoveredSet) Add(tok types.Token) bool {
	if s.Contains(tok) {
		return false
	}
	s.byHash[tok.Hash] = append(s.byHash[tok.Hash], tok)
	s.count++
	return true
}

// Merge folds every token of other into s. Used to combine per-file sets
// from parallel scans in their deterministic input order.
func (s *DiscoveredSet) Merge(other *DiscoveredSet) {
	for _, toks := range other.byHash {
		for _, tok := range toks {
			s.Add(tok)
		}
	}
}

// Count returns the number of distinct symbols in the set.
func (s *DiscoveredSet) Count() int {
	return s.count
}

// Tokens returns every symbol in the set in unspecified order; the emitter
// applies its own deterministic sort.
func (s *DiscoveredSet) Tokens() []types.Token {
	out := make([]types.Token, 0, s.count)
	for _, toks := range s.byHash {
		out = append(out, toks...)
	}
	return out
}
