package gen

import (
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/glgen/internal/debug"
	generrors "github.com/standardbeagle/glgen/internal/errors"
)

// WriteIfChanged writes content to path unless an identical file is already
// there. Leaving an unchanged output untouched keeps its modification time
// stable, so downstream incremental builds do not rebuild against it.
// Reports whether the file was written.
func WriteIfChanged(path string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil {
		if len(existing) == len(content) && xxhash.Sum64(existing) == xxhash.Sum64(content) {
			debug.Logf("gen: %s unchanged, not rewritten", path)
			return false, nil
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, generrors.NewOutputError("write", err).WithPath(path)
	}
	return true, nil
}
