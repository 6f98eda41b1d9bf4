package gen

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	generrors "github.com/standardbeagle/glgen/internal/errors"
)

// ExpandInputs resolves the configured input list, expanding doublestar glob
// patterns against the filesystem and dropping paths matched by an exclude
// pattern. Plain paths pass through untouched (so missing files still get
// their per-file warning later) and duplicates are removed. Order is
// preserved: it determines the scan and warning order.
func ExpandInputs(inputs, excludes []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		if excluded(path, excludes) {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}

	for _, input := range inputs {
		if !isPattern(input) {
			add(input)
			continue
		}
		matches, err := doublestar.FilepathGlob(input)
		if err != nil {
			return nil, generrors.NewConfigError("glob", err).WithPath(input)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func isPattern(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

func excluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, err := doublestar.PathMatch(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
