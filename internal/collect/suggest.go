package collect

import (
	"github.com/hbollon/go-edlib"
)

// DefaultSuggestThreshold is the minimum Jaro-Winkler similarity for a
// registry name to be offered as a correction for an unresolved symbol.
const DefaultSuggestThreshold = 0.88

// Suggester finds the registry symbol closest to an unresolved one, so the
// warning can point at a likely typo (glVertexAttribPtr vs
// glVertexAttribPointer). Suggestions decorate warnings; they never change
// whether a warning is emitted.
type Suggester struct {
	names     []string
	threshold float64
}

// NewSuggester builds a suggester over the registry's symbol names.
// A threshold outside (0,1] falls back to the default.
func NewSuggester(names []string, threshold float64) *Suggester {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSuggestThreshold
	}
	return &Suggester{names: names, threshold: threshold}
}

// Best returns the most similar registry name at or above the threshold.
func (s *Suggester) Best(symbol string) (string, bool) {
	if s == nil {
		return "", false
	}
	best := ""
	bestScore := s.threshold
	for _, name := range s.names {
		score, err := edlib.StringsSimilarity(symbol, name, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if float64(score) >= bestScore {
			best = name
			bestScore = float64(score)
		}
	}
	return best, best != ""
}
