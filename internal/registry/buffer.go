package registry

import (
	"fmt"
	"os"

	generrors "github.com/standardbeagle/glgen/internal/errors"
)

// LoadBuffer reads every registry file in the caller-given order and returns
// one concatenated buffer. The boundary between two files is normalized to
// exactly two newline bytes so a token can never span adjacent files (a line
// marker such as "#define" at the start of a file must still sit at a line
// start after concatenation).
//
// Any unreadable or empty registry file aborts the load: without a complete
// registry no index can be built and no output may be produced.
func LoadBuffer(paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return nil, generrors.NewRegistryError("load", fmt.Errorf("no registry files given"))
	}

	var buf []byte
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, generrors.NewRegistryError("read", err).WithPath(path)
		}
		if len(data) == 0 {
			return nil, generrors.NewRegistryError("read", generrors.ErrEmptyFile).WithPath(path)
		}
		if i > 0 {
			for len(buf) > 0 && (buf[len(buf)-1] == '\n' || buf[len(buf)-1] == '\r') {
				buf = buf[:len(buf)-1]
			}
			buf = append(buf, '\n', '\n')
		}
		buf = append(buf, data...)
	}
	return buf, nil
}
