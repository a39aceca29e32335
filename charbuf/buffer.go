// Package charbuf implements the shared growable character buffer (C2).
//
// All text, tag, and attribute content produced while lexing a document is
// appended to one Buffer per document. Nodes never hold raw strings or
// pointers into the buffer; they hold a Span of stable integer offsets, so
// that the buffer may relocate (on growth) without invalidating the tree.
package charbuf

import "unicode/utf8"

const initialCapacity = 8 * 1024

// Span is a half-open byte range [Start, End) into a Buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Buffer is a growable byte arena. It grows by doubling and never shrinks
// during a parse, so offsets handed out by Append* remain valid for the
// buffer's whole lifetime.
type Buffer struct {
	data []byte
}

// New creates an empty Buffer with its initial backing array preallocated.
func New() *Buffer {
	return &Buffer{data: make([]byte, 0, initialCapacity)}
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) grow(extra int) {
	need := len(b.data) + extra
	if need <= cap(b.data) {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = initialCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// AppendByte appends a single byte and returns the Span it now occupies.
func (b *Buffer) AppendByte(c byte) Span {
	start := len(b.data)
	b.grow(1)
	b.data = append(b.data, c)
	return Span{Start: start, End: len(b.data)}
}

// AppendRune appends the UTF-8 encoding of r and returns the Span it now
// occupies.
func (b *Buffer) AppendRune(r rune) Span {
	start := len(b.data)
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	b.grow(n)
	b.data = append(b.data, tmp[:n]...)
	return Span{Start: start, End: len(b.data)}
}

// AppendString appends s verbatim (already UTF-8 encoded) and returns the
// Span it now occupies.
func (b *Buffer) AppendString(s string) Span {
	start := len(b.data)
	b.grow(len(s))
	b.data = append(b.data, s...)
	return Span{Start: start, End: len(b.data)}
}

// ByteAt returns the byte stored at offset i.
func (b *Buffer) ByteAt(i int) byte { return b.data[i] }

// SetByteAt overwrites the byte stored at offset i, patching an
// already-appended byte by offset without holding a pointer across a later
// Append call.
func (b *Buffer) SetByteAt(i int, c byte) { b.data[i] = c }

// Slice returns the bytes in [s.Start, s.End). The returned slice aliases
// the buffer's backing array and must not be retained across a call that
// may grow the buffer (any Append* call); copy it first if it must outlive
// that scope.
func (b *Buffer) Slice(s Span) []byte { return b.data[s.Start:s.End] }

// Text returns a copy of the bytes in s as a string. Safe to retain.
func (b *Buffer) Text(s Span) string { return string(b.data[s.Start:s.End]) }
