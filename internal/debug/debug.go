// Package debug provides opt-in trace logging for the generator. Output is
// off unless a writer is installed (the --debug flag wires stderr).
package debug

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	out io.Writer
)

// SetOutput installs the debug writer. Pass nil to disable tracing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Enabled reports whether debug tracing is active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Logf writes one timestamped trace line if tracing is active.
func Logf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
