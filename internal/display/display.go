// Package display renders user-facing diagnostics: yellow warnings on the
// error stream, a green success summary on standard output. Writers are
// injectable so scans can buffer warnings and tests can capture output.
package display

import (
	"fmt"
	"io"
	"runtime"
)

const (
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiReset  = "\x1b[0m"
)

// Printer writes colored diagnostics. Silent suppresses the success summary
// only; warnings and errors always print.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	silent bool
	color  bool
}

// NewPrinter builds a printer. Color is requested by the caller; it is
// force-disabled on Windows consoles, as the original tool did.
func NewPrinter(out, errOut io.Writer, silent, color bool) *Printer {
	if runtime.GOOS == "windows" {
		color = false
	}
	return &Printer{out: out, errOut: errOut, silent: silent, color: color}
}

// WithErrOut returns a copy of the printer whose warnings go to w.
// Used to buffer per-file warnings during parallel scans.
func (p *Printer) WithErrOut(w io.Writer) *Printer {
	clone := *p
	clone.errOut = w
	return &clone
}

// ErrOut exposes the warning stream for raw flushes of buffered output.
func (p *Printer) ErrOut() io.Writer {
	return p.errOut
}

func (p *Printer) paint(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ansiReset
}

// Warnf prints a warning line to the error stream.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(p.errOut, "%s: %s\n", p.paint(ansiYellow, "WARNING"), fmt.Sprintf(format, args...))
}

// Errorf prints an error line to the error stream.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.errOut, "ERROR: %s\n", fmt.Sprintf(format, args...))
}

// Successf prints a green status line unless the printer is silent.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.silent {
		return
	}
	fmt.Fprintf(p.out, "%s\n", p.paint(ansiGreen, fmt.Sprintf(format, args...)))
}
