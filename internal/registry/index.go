// Package registry builds the immutable symbol index from vendor API registry
// headers. The index is a fixed-capacity open-addressing table keyed by the
// 32-bit symbol hash; it is built once at startup and read-only afterwards.
package registry

import (
	"github.com/standardbeagle/glgen/internal/debug"
	generrors "github.com/standardbeagle/glgen/internal/errors"
	"github.com/standardbeagle/glgen/internal/scan"
	"github.com/standardbeagle/glgen/internal/types"
)

// tableSize is the fixed slot count of the symbol index. Power of two so the
// probe position is hash&(tableSize-1). Real registries carry a few thousand
// symbols, leaving the table comfortably under-loaded.
const tableSize = 8192

const tableMask = tableSize - 1

// exportMarker starts a function declaration line in the registry header.
const exportMarker = "GLAPI"

// defineMarker starts a macro definition line.
const defineMarker = "#define"

// EntryKind distinguishes function declarations from macro definitions.
type EntryKind uint8

const (
	KindFunction EntryKind = iota
	KindMacro
)

// Entry is one registry declaration. All spans alias the registry buffer,
// which outlives the index. Macro entries populate only Name and Line.
type Entry struct {
	Hash       uint32
	Kind       EntryKind
	Name       types.Span // Symbol name, verbatim
	Line       types.Span // Whole declaration line, verbatim
	ReturnType types.Span // Function return type (qualifiers and '*' included)
	Params     types.Span // Parameter list through the trailing semicolon
}

// Index maps a symbol's 32-bit hash (plus its text, to break hash ties) to
// its registry declaration. Immutable once Build returns.
type Index struct {
	slots [tableSize]Entry
	count int
	names []string // symbol names in insertion order, for fuzzy suggestions
}

// Build scans the concatenated registry buffer and indexes every function
// declaration and macro definition. The first occurrence of a symbol wins;
// later duplicates (registries commonly repeat symbols across files) are
// dropped. A full table is a hard error: silently losing declarations would
// corrupt the generated output with no diagnostic.
func Build(buf []byte) (*Index, error) {
	idx := &Index{}
	t := scan.NewTokenizer(buf)

	for {
		tok := t.NextDecl()
		if tok.IsEmpty() {
			break
		}
		switch {
		case tok.EqualString(exportMarker):
			if err := idx.addFunction(buf, t, tok); err != nil {
				return nil, err
			}
		case tok.EqualString(defineMarker):
			if err := idx.addMacro(buf, t, tok); err != nil {
				return nil, err
			}
		}
	}

	debug.Logf("registry: indexed %d symbols", idx.count)
	return idx, nil
}

// addFunction parses one "GLAPI <ret> <callconv> <name> <params...>;" line.
// The cursor sits just past the export marker on entry and past the line's
// parameter list on return.
func (idx *Index) addFunction(buf []byte, t *scan.Tokenizer, marker types.Token) error {
	lineStart := int(marker.Offset)

	retStart := t.Pos()
	ret := t.NextDecl()
	if ret.EqualString("const") {
		// Qualifier folds into the return type: "const GLubyte *".
		t.NextDecl()
	}
	retEnd := t.Pos()

	// The calling-convention macro (GLAPIENTRY and friends) sits between the
	// return type and the function name; it never appears in output.
	t.NextDecl()

	name := t.NextDecl()
	if name.IsEmpty() {
		return nil // truncated declaration at end of buffer
	}

	paramStart := t.Pos()
	t.SkipToLineEnd()
	paramEnd := t.Pos()

	entry := Entry{
		Hash:       name.Hash,
		Kind:       KindFunction,
		Name:       name.Span,
		Line:       types.NewSpan(buf, lineStart, paramEnd-lineStart),
		ReturnType: trimmedSpan(buf, retStart, retEnd),
		Params:     trimmedSpan(buf, paramStart, paramEnd),
	}
	return idx.insert(entry)
}

// addMacro parses one "#define <name> <value...>" line. The whole physical
// line is kept verbatim; the emitter reproduces it untouched.
func (idx *Index) addMacro(buf []byte, t *scan.Tokenizer, marker types.Token) error {
	lineStart := int(marker.Offset)

	name := t.NextDecl()
	if name.IsEmpty() {
		return nil
	}

	t.SkipToLineEnd()
	entry := Entry{
		Hash: name.Hash,
		Kind: KindMacro,
		Name: name.Span,
		Line: types.NewSpan(buf, lineStart, t.Pos()-lineStart),
	}
	return idx.insert(entry)
}

// insert adds the entry via linear probing unless an entry with the same name
// already exists (first write wins). Hash value 0 is the empty-slot sentinel,
// so a symbol hashing to exactly 0 cannot be represented; such a symbol has
// never occurred in a published registry.
func (idx *Index) insert(entry Entry) error {
	if entry.Hash == 0 {
		debug.Logf("registry: dropping sentinel-hash symbol %q", entry.Name.String())
		return nil
	}
	slot := entry.Hash & tableMask
	for probes := 0; probes < tableSize; probes++ {
		existing := &idx.slots[slot]
		if existing.Hash == 0 {
			*existing = entry
			idx.count++
			idx.names = append(idx.names, entry.Name.String())
			return nil
		}
		if existing.Hash == entry.Hash && existing.Name.Equal(entry.Name) {
			return nil // duplicate declaration, keep the first
		}
		slot = (slot + 1) & tableMask
	}
	return generrors.NewRegistryError("index", generrors.ErrTableFull)
}

// Lookup resolves a scanned token to its registry entry. Identity is the
// 32-bit hash plus exact text: hash equality alone would make two colliding
// symbols indistinguishable.
func (idx *Index) Lookup(tok types.Token) (*Entry, bool) {
	if tok.Hash == 0 {
		return nil, false
	}
	slot := tok.Hash & tableMask
	for probes := 0; probes < tableSize; probes++ {
		entry := &idx.slots[slot]
		if entry.Hash == 0 {
			return nil, false
		}
		if entry.Hash == tok.Hash && entry.Name.Equal(tok.Span) {
			return entry, true
		}
		slot = (slot + 1) & tableMask
	}
	return nil, false
}

// LookupName resolves a symbol by name text.
func (idx *Index) LookupName(name string) (*Entry, bool) {
	return idx.Lookup(types.TokenFromString(name))
}

// Count returns the number of indexed declarations.
func (idx *Index) Count() int {
	return idx.count
}

// Names returns every indexed symbol name in insertion order. The slice is
// shared; callers must not mutate it.
func (idx *Index) Names() []string {
	return idx.names
}

// trimmedSpan builds a span over buf[start:end] with surrounding whitespace
// removed, so emitted fragments carry no incidental padding.
func trimmedSpan(buf []byte, start, end int) types.Span {
	for start < end && (buf[start] == ' ' || buf[start] == '\t') {
		start++
	}
	for end > start && (buf[end-1] == ' ' || buf[end-1] == '\t' || buf[end-1] == '\r') {
		end--
	}
	return types.NewSpan(buf, start, end-start)
}
