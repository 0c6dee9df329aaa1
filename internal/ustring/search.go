package ustring

import "bytes"

// Find returns the codepoint index of the first occurrence of needle as
// a contiguous codepoint subsequence, or NotFound if absent. Matching is
// exact scalar equality, not locale-folded, and the returned index is
// directly usable with Substr.
func (s *String) Find(needle *String) CharIndex {
	if needle == nil {
		return 0
	}
	return s.findBytes(needle.buf)
}

// FindString is Find over a Go string needle.
func (s *String) FindString(needle string) CharIndex {
	return s.findBytes([]byte(needle))
}

// FindChar returns the codepoint index of the first occurrence of c,
// or NotFound.
func (s *String) FindChar(c Char) CharIndex {
	return s.findBytes([]byte(c.String()))
}

// findBytes searches at the byte level and converts the hit back to a
// codepoint index. A valid UTF-8 needle can only match on a codepoint
// boundary: lead bytes and continuation bytes occupy disjoint ranges, so
// the byte offset always sits on a boundary.
func (s *String) findBytes(needle []byte) CharIndex {
	off := bytes.Index(s.buf, needle)
	if off < 0 {
		return NotFound
	}
	return s.charIndexOfByte(off)
}

// Contains returns true if the character occurs anywhere in the String.
func (s *String) Contains(c Char) bool {
	return s.findBytes([]byte(c.String())) != NotFound
}

// ContainsString returns true if the substring occurs in the String.
func (s *String) ContainsString(sub string) bool {
	return bytes.Contains(s.buf, []byte(sub))
}
