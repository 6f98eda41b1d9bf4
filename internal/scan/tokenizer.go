// Package scan provides the identifier tokenizer shared by registry parsing
// and usage collection. It is not a C parser: it only recognizes maximal runs
// of identifier-class characters and physical line boundaries.
package scan

import (
	"github.com/standardbeagle/glgen/internal/types"
)

// Identifier-class characters: the symbols the generator cares about
// (function names, macro names, declaration markers) are built from these.
// '#' keeps "#define" a single token; '*' keeps pointer types intact.
func isIdentifierChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '_' || c == '#' || c == '*'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}

func isNewline(c byte) bool {
	return c == '\r' || c == '\n'
}

// Tokenizer yields identifier tokens from a single text buffer. It is a lazy
// cursor: tokens come out one at a time, the sequence ends with an empty
// token, and the only way to start over is Reset. A Tokenizer must not be
// moved across buffers mid-scan; spans it produces alias the buffer.
type Tokenizer struct {
	buf []byte
	pos int
}

// NewTokenizer returns a tokenizer positioned at the start of buf.
func NewTokenizer(buf []byte) *Tokenizer {
	return &Tokenizer{buf: buf}
}

// Reset rewinds the tokenizer to the start of its buffer.
func (t *Tokenizer) Reset() {
	t.pos = 0
}

// Pos returns the current byte offset of the cursor.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// skipToIdentifier advances past everything that cannot start a token.
func (t *Tokenizer) skipToIdentifier() {
	for t.pos < len(t.buf) && !isIdentifierChar(t.buf[t.pos]) {
		t.pos++
	}
}

// consumeRun consumes a maximal identifier-class run and returns its start.
func (t *Tokenizer) consumeRun() int {
	start := t.pos
	for t.pos < len(t.buf) && isIdentifierChar(t.buf[t.pos]) {
		t.pos++
	}
	return start
}

// Next returns the next identifier token. At end of input it returns an
// empty-length token; callers treat that as the terminal state.
func (t *Tokenizer) Next() types.Token {
	t.skipToIdentifier()
	start := t.consumeRun()
	return types.NewToken(t.buf, start, t.pos-start)
}

// NextDecl is the declaration-line variant of Next: after the identifier run,
// a single whitespace character immediately followed by '*' is absorbed into
// the token. This keeps a pointer return type such as "GLvoid *" one logical
// unit instead of splitting the '*' into its own token.
func (t *Tokenizer) NextDecl() types.Token {
	t.skipToIdentifier()
	start := t.consumeRun()
	if t.pos+1 < len(t.buf) && isWhitespace(t.buf[t.pos]) && t.buf[t.pos+1] == '*' {
		t.pos += 2
	}
	return types.NewToken(t.buf, start, t.pos-start)
}

// SkipToLineEnd advances the cursor to the next newline byte (or end of
// buffer) without consuming it.
func (t *Tokenizer) SkipToLineEnd() {
	for t.pos < len(t.buf) && !isNewline(t.buf[t.pos]) {
		t.pos++
	}
}

// AtEnd reports whether the cursor has consumed the whole buffer.
func (t *Tokenizer) AtEnd() bool {
	return t.pos >= len(t.buf)
}
