// Package emit writes the generated declarations header from the registry
// index and the discovered symbol sets. Emission is deterministic: symbols
// are ordered by descending hash (a stable, registry-coupled ordering that
// downstream staleness checks rely on), and every declaration fragment is a
// verbatim substring of its registry line.
package emit

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/standardbeagle/glgen/internal/registry"
	"github.com/standardbeagle/glgen/internal/types"
)

// Options control the non-core parts of the output.
type Options struct {
	// Prefix names the boilerplate's version struct, init function and
	// loader routines. May be empty.
	Prefix string

	// Boilerplate enables the loader glue: version struct, pointer
	// variables, macro aliases, platform loaders and the init body.
	Boilerplate bool

	// Stamp is the generation digest recorded in the header comment.
	// Derived from the run's inputs so identical inputs reproduce
	// byte-identical output.
	Stamp uint64
}

// Emit writes the complete generated header to w.
func Emit(w io.Writer, idx *registry.Index, funcs, macros []types.Token, opts Options) error {
	out := bufio.NewWriter(w)

	fns := resolveSorted(idx, funcs)
	defs := resolveSorted(idx, macros)

	fmt.Fprintf(out, headerGuard, opts.Stamp)

	if opts.Boilerplate {
		fmt.Fprintf(out, versionStruct, opts.Prefix)
	}

	out.WriteString(baseTypedefs)

	for _, entry := range defs {
		out.Write(entry.Line.Bytes())
		out.WriteByte('\n')
	}

	out.WriteString("\n\n")
	out.WriteString(debugProcTypedef)

	for _, entry := range fns {
		fmt.Fprintf(out, "typedef %s (APIENTRYP PFN%sPROC) %s\n",
			entry.ReturnType.Bytes(), upper(entry.Name), entry.Params.Bytes())
	}

	if opts.Boilerplate {
		out.WriteString("\n\n")
		for _, entry := range fns {
			fmt.Fprintf(out, "#define %s %s%s\n", entry.Name.Bytes(), procPrefix, entry.Name.Bytes())
		}

		out.WriteString("\n\n")
		for _, entry := range fns {
			fmt.Fprintf(out, "PFN%sPROC %s%s;\n", upper(entry.Name), procPrefix, entry.Name.Bytes())
		}

		fmt.Fprintf(out, loaderRoutines, opts.Prefix)

		fmt.Fprintf(out, initHead, opts.Prefix)
		for _, entry := range fns {
			fmt.Fprintf(out, "  %s%s = (PFN%sPROC)%sOpenGLGetProc(\"%s\");\n",
				procPrefix, entry.Name.Bytes(), upper(entry.Name), opts.Prefix, entry.Name.Bytes())
		}
		fmt.Fprintf(out, initTail, opts.Prefix)
	} else {
		out.WriteString("\n")
	}

	out.WriteString(headerGuardEnd)
	return out.Flush()
}

// resolveSorted maps discovered tokens to their registry entries, dropping
// tokens with no entry (seed symbols absent from a stripped registry), and
// orders them by descending hash. Hash ties break on name text so the order
// is total and reproducible.
func resolveSorted(idx *registry.Index, tokens []types.Token) []*registry.Entry {
	entries := make([]*registry.Entry, 0, len(tokens))
	for _, tok := range tokens {
		if entry, ok := idx.Lookup(tok); ok {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Hash != entries[j].Hash {
			return entries[i].Hash > entries[j].Hash
		}
		return bytes.Compare(entries[i].Name.Bytes(), entries[j].Name.Bytes()) < 0
	})
	return entries
}

// upper returns the span's text upper-cased for the PFN typedef name.
func upper(s types.Span) []byte {
	return bytes.ToUpper(s.Bytes())
}
