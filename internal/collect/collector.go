package collect

import (
	"bytes"
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/glgen/internal/debug"
	"github.com/standardbeagle/glgen/internal/display"
	generrors "github.com/standardbeagle/glgen/internal/errors"
	"github.com/standardbeagle/glgen/internal/registry"
	"github.com/standardbeagle/glgen/internal/scan"
	"github.com/standardbeagle/glgen/internal/types"
)

// Collector resolves symbol candidates found in user sources against the
// registry index and an ignore list. The index must be fully built before
// any scan starts; the collector never mutates it.
type Collector struct {
	index   *registry.Index
	ignore  map[string]struct{}
	suggest *Suggester
}

// NewCollector builds a collector. The ignore list is matched by exact,
// case-sensitive text. suggest may be nil to disable typo suggestions.
func NewCollector(index *registry.Index, ignore []string, suggest *Suggester) *Collector {
	ignoreSet := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		ignoreSet[name] = struct{}{}
	}
	return &Collector{index: index, ignore: ignoreSet, suggest: suggest}
}

// isFunctionCandidate matches the glXxx calling convention: "gl" followed by
// an uppercase letter. Plain gl-prefixed identifiers (glsl, global) and the
// windowing toolkit's glfwXxx functions do not match.
func isFunctionCandidate(tok types.Token) bool {
	if tok.Length < 3 || !tok.HasPrefix("gl") {
		return false
	}
	c := tok.Bytes()[2]
	return c >= 'A' && c <= 'Z'
}

func isMacroCandidate(tok types.Token) bool {
	return tok.HasPrefix("GL_")
}

// resolve classifies one candidate token into set. Already-discovered symbols
// are skipped outright. Unknown symbols check the ignore list; symbols in
// neither produce one warning per occurrence and never reach the output.
func (c *Collector) resolve(tok types.Token, set *DiscoveredSet, p *display.Printer) {
	if set.Contains(tok) {
		return
	}
	if _, ok := c.index.Lookup(tok); ok {
		set.Add(tok)
		return
	}
	text := tok.String()
	if _, ignored := c.ignore[text]; ignored {
		return
	}
	if hint, ok := c.suggest.Best(text); ok {
		p.Warnf("symbol not found in registry: %s (did you mean %s?)", text, hint)
		return
	}
	p.Warnf("symbol not found in registry: %s", text)
}

// scanBuffer runs the classification pass over one file's bytes.
func (c *Collector) scanBuffer(buf []byte, funcs, macros *DiscoveredSet, p *display.Printer) {
	t := scan.NewTokenizer(buf)
	for {
		tok := t.Next()
		if tok.IsEmpty() {
			break
		}
		if isFunctionCandidate(tok) {
			c.resolve(tok, funcs, p)
		} else if isMacroCandidate(tok) {
			c.resolve(tok, macros, p)
		}
	}
}

// Scan reads and scans a single input file. Unreadable and empty files
// return a recoverable input error; the caller decides whether to continue.
// The file's bytes stay referenced by discovered tokens until emission.
func (c *Collector) Scan(path string, funcs, macros *DiscoveredSet, p *display.Printer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return generrors.NewInputError("read", err).WithPath(path)
	}
	if len(data) == 0 {
		return generrors.NewInputError("read", generrors.ErrEmptyFile).WithPath(path)
	}
	debug.Logf("scan: %s (%d bytes)", path, len(data))
	c.scanBuffer(data, funcs, macros, p)
	return nil
}

// fileResult holds one file's locally discovered symbols and its buffered
// warnings, merged into the shared sets strictly in input order.
type fileResult struct {
	funcs    *DiscoveredSet
	macros   *DiscoveredSet
	warnings bytes.Buffer
}

// ScanAll scans every input file with up to jobs concurrent workers. The
// shared discovered sets have no internal synchronization, so each worker
// fills per-file sets and buffers its warnings; both are folded in the
// caller-given file order, making output and diagnostics deterministic
// regardless of scheduling. Unreadable files are warned about and skipped.
func (c *Collector) ScanAll(ctx context.Context, paths []string, jobs int, funcs, macros *DiscoveredSet, p *display.Printer) error {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]*fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := &fileResult{
				funcs:  NewDiscoveredSet(),
				macros: NewDiscoveredSet(),
			}
			local := p.WithErrOut(&res.warnings)
			if err := c.Scan(path, res.funcs, res.macros, local); err != nil {
				local.Warnf("%v", err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if res == nil {
			continue
		}
		if res.warnings.Len() > 0 {
			_, _ = res.warnings.WriteTo(p.ErrOut())
		}
		funcs.Merge(res.funcs)
		macros.Merge(res.macros)
	}
	return nil
}
