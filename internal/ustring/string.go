package ustring

import (
	"strings"
	"unicode/utf8"
)

// String is a growable Unicode string stored as UTF-8 bytes.
// All positional operations take and report codepoint units; byte offsets
// never appear in the public contract.
//
// The zero value is an empty, ready-to-use String. Mutating methods work in
// place and return the receiver so calls can be chained. A String must not
// be copied by plain assignment once it has content; use Clone for an
// independent copy.
type String struct {
	buf   []byte // always valid UTF-8
	chars int    // cached codepoint count, kept consistent with buf

	// Cached result of the last index translation. Purely an
	// optimization; correctness never depends on it.
	cacheChar int
	cacheByte int
}

// New creates an empty String.
func New() *String {
	return &String{}
}

// FromString creates a String from a Go string.
// Invalid UTF-8 sequences are replaced with U+FFFD so the buffer
// invariant holds for any input.
func FromString(s string) *String {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	return &String{
		buf:   []byte(s),
		chars: utf8.RuneCountInString(s),
	}
}

// FromBytes creates a String from a byte buffer assumed to hold UTF-8.
// The bytes are copied; invalid sequences are replaced with U+FFFD.
func FromBytes(b []byte) *String {
	return FromString(string(b))
}

// FromChar creates a String holding a single character.
func FromChar(c Char) *String {
	return FromString(c.String())
}

// Size returns the number of codepoints, never the byte count.
func (s *String) Size() int {
	return s.chars
}

// IsEmpty returns true if the String contains no characters.
func (s *String) IsEmpty() bool {
	return s.chars == 0
}

// String returns the content as a Go string.
func (s *String) String() string {
	return string(s.buf)
}

// ByteLen returns the encoded length in bytes. It is a storage metric,
// not a position: positional operations never take byte units.
func (s *String) ByteLen() int {
	return len(s.buf)
}

// Bytes returns a copy of the encoded content.
func (s *String) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Clone returns an independent deep copy.
func (s *String) Clone() *String {
	out := &String{
		buf:   make([]byte, len(s.buf)),
		chars: s.chars,
	}
	copy(out.buf, s.buf)
	return out
}

// Clear removes all content.
func (s *String) Clear() *String {
	s.buf = s.buf[:0]
	s.chars = 0
	s.resetCache()
	return s
}

// Equal reports exact content equality over the encoded form.
// Ordering, by contrast, goes through the collate package; see Compare.
func (s *String) Equal(other *String) bool {
	if other == nil {
		return s.chars == 0
	}
	return string(s.buf) == string(other.buf)
}

// EqualString reports exact content equality with a Go string.
func (s *String) EqualString(other string) bool {
	return string(s.buf) == other
}

func (s *String) resetCache() {
	s.cacheChar = 0
	s.cacheByte = 0
}
