package jsonvalue_airp

import (
	"bytes"

	"github.com/pkg/errors"
)

// String is a view of a string cell. Strings shorter than 16 bytes are kept
// inside the cell, longer ones in a NUL terminated heap buffer.
type String Value

// NewString returns a string value holding a copy of s.
func NewString(s string) String {
	return String(stringCell(s))
}

// NewStringBytes returns a string value holding a copy of b.
func NewStringBytes(b []byte) String {
	var v Value
	copy(v.textBuf(len(b)), b)
	return String(v)
}

func stringCell(s string) Value {
	var v Value
	copy(v.textBuf(len(s)), s)
	return v
}

// textBuf turns v into a string of n bytes and returns the space to fill.
func (v *Value) textBuf(n int) []byte {
	if n <= maxInline {
		v.tag = shortTag(n)
		return v.data[:n]
	}
	if uint64(n) > maxStringLen {
		panic(errors.Wrapf(ErrTooLarge, "string of %d bytes", n))
	}
	text := make([]byte, n+1)
	v.ref = &slab{text: text}
	v.setWord(uint64(n))
	v.tag = tagString
	return text[:n]
}

func (s *String) v() *Value {
	return (*Value)(s)
}

// AsValue returns s as a generic value aliasing the same cell.
func (s *String) AsValue() *Value {
	return s.v()
}

// Len returns the length of s in bytes.
func (s *String) Len() int {
	if s.tag.isInline() {
		return s.tag.inlineLen()
	}
	return s.v().count()
}

// Bytes returns the content of s. The slice aliases the cell and must not be
// modified.
func (s *String) Bytes() []byte {
	return s.v().bytes()
}

// String returns the content of s as a Go string.
func (s *String) String() string {
	return string(s.v().bytes())
}

// Inline reports whether s is stored inside its cell.
func (s *String) Inline() bool {
	return s.tag.isInline()
}

// Equal reports whether s and o hold the same bytes, however each is stored.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Compare orders s and o by their bytes like bytes.Compare.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Clone returns a deep copy of s.
func (s *String) Clone() String {
	return String(s.v().Clone())
}

// Take moves s out. A heap string leaves the empty string behind.
func (s *String) Take() String {
	return String(s.v().Take())
}
