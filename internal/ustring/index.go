package ustring

import "unicode/utf8"

// CharIndex is a codepoint index into a String.
type CharIndex = int

// NotFound is the sentinel returned by search operations when the needle
// does not occur. It is distinct from every valid index.
const NotFound CharIndex = -1

// leadWidth returns the encoded width (1-4) of the sequence whose lead
// byte is b. The buffer invariant guarantees b is never a continuation
// byte when this is called on a codepoint boundary.
func leadWidth(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 1
}

// isLead returns true if b starts a UTF-8 sequence.
// Continuation bytes match 10xxxxxx.
func isLead(b byte) bool {
	return b&0xC0 != 0x80
}

// byteOffsetForChar maps a codepoint index to the byte offset of that
// codepoint's lead byte. i == Size() maps to the end of the buffer, the
// valid append-at-end position. Returns -1 when i is negative or exceeds
// the codepoint count.
//
// Scanning restarts from the cached last translation when the target lies
// at or beyond it, so sequential access is near O(1). The cache is an
// optimization only; a cold scan from the start gives the same answer.
func (s *String) byteOffsetForChar(i CharIndex) int {
	if i < 0 || i > s.chars {
		return -1
	}
	if i == s.chars {
		return len(s.buf)
	}
	if i == 0 {
		return 0
	}

	char, off := 0, 0
	if s.cacheChar > 0 && s.cacheChar <= i && s.cacheByte < len(s.buf) {
		char, off = s.cacheChar, s.cacheByte
	}
	for char < i {
		off += leadWidth(s.buf[off])
		char++
	}

	s.cacheChar = char
	s.cacheByte = off
	return off
}

// charIndexOfByte converts a byte offset at a codepoint boundary back to
// its codepoint index by counting lead bytes.
func (s *String) charIndexOfByte(off int) CharIndex {
	if off <= 0 {
		return 0
	}
	if off >= len(s.buf) {
		return s.chars
	}
	idx := 0
	for i := 0; i < off; i++ {
		if isLead(s.buf[i]) {
			idx++
		}
	}
	return idx
}

// At returns the character at codepoint index i.
// Returns the zero Char and false when i is out of range.
func (s *String) At(i CharIndex) (Char, bool) {
	off := s.byteOffsetForChar(i)
	if off < 0 || off >= len(s.buf) {
		return 0, false
	}
	r, _ := utf8.DecodeRune(s.buf[off:])
	return Char(r), true
}
