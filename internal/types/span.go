package types

import "bytes"

// Span is a lightweight, immutable reference to a substring of a text buffer.
// It carries the buffer it points into, so a Span can never outlive the bytes
// it references; all generation buffers are held for the whole run anyway.
type Span struct {
	Buf    []byte // Owning buffer (shared, never mutated after load)
	Offset uint32 // Byte offset into Buf
	Length uint32 // Number of bytes
}

// EmptySpan represents an empty/invalid span.
var EmptySpan = Span{}

// NewSpan creates a Span over buf[start:start+length].
// Out-of-bounds arguments yield the empty span.
func NewSpan(buf []byte, start, length int) Span {
	if start < 0 || length < 0 || start+length > len(buf) {
		return Span{}
	}
	return Span{
		Buf:    buf,
		Offset: uint32(start),
		Length: uint32(length),
	}
}

// IsEmpty returns true if the span references no bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Bytes returns the referenced bytes without copying.
func (s Span) Bytes() []byte {
	if s.IsEmpty() {
		return nil
	}
	return s.Buf[s.Offset : s.Offset+s.Length]
}

// String copies the referenced bytes into a string.
// Use for diagnostics and output, not on hot paths.
func (s Span) String() string {
	return string(s.Bytes())
}

// Equal reports whether two spans reference identical text.
func (s Span) Equal(other Span) bool {
	if s.Length != other.Length {
		return false
	}
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// EqualString reports whether the span's text equals s exactly.
// Case-sensitive, no allocation.
func (s Span) EqualString(text string) bool {
	if s.Length != uint32(len(text)) {
		return false
	}
	b := s.Bytes()
	for i := 0; i < len(text); i++ {
		if b[i] != text[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the span's text starts with prefix.
func (s Span) HasPrefix(prefix string) bool {
	if s.Length < uint32(len(prefix)) {
		return false
	}
	b := s.Bytes()
	for i := 0; i < len(prefix); i++ {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}
