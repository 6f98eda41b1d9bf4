package types

// Token is a span of identifier-class text plus its precomputed symbol hash.
type Token struct {
	Span
	Hash uint32
}

// NewToken builds a token over buf[start:start+length] and hashes it.
func NewToken(buf []byte, start, length int) Token {
	span := NewSpan(buf, start, length)
	return Token{Span: span, Hash: SymbolHash(span.Bytes())}
}

// TokenFromString builds a token backed by its own string bytes.
// Used for seed symbols that do not originate from any scanned file.
func TokenFromString(text string) Token {
	buf := []byte(text)
	return NewToken(buf, 0, len(buf))
}
