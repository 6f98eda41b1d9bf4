package gen

import (
	"os"
	"time"
)

// Stale reports whether the output must be regenerated: it is missing, or
// any dependency (registry, input or config file) is newer. Dependencies
// that cannot be stat'ed are ignored here; the actual read later produces
// the proper diagnostic.
func Stale(output string, deps []string) bool {
	info, err := os.Stat(output)
	if err != nil {
		return true
	}
	outTime := info.ModTime()

	var newest time.Time
	for _, dep := range deps {
		depInfo, err := os.Stat(dep)
		if err != nil {
			continue
		}
		if t := depInfo.ModTime(); t.After(newest) {
			newest = t
		}
	}
	return newest.After(outTime)
}
