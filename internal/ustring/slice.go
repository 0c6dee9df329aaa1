package ustring

// Substr returns the codepoint range [start, start+length) as a new
// String. Both arguments are codepoint counts. The range is clipped to
// the actual size: start at or past the end yields an empty String, and
// a length extending past the end is silently truncated. Multi-byte
// codepoints are atomic, so the result always holds whole characters.
func (s *String) Substr(start, length CharIndex) *String {
	if start < 0 || length <= 0 || start >= s.chars {
		return New()
	}
	if length > s.chars-start {
		length = s.chars - start
	}

	lo := s.byteOffsetForChar(start)
	hi := lo
	for i := 0; i < length; i++ {
		hi += leadWidth(s.buf[hi])
	}

	out := &String{
		buf:   make([]byte, hi-lo),
		chars: length,
	}
	copy(out.buf, s.buf[lo:hi])
	return out
}

// Left returns the first n codepoints.
func (s *String) Left(n CharIndex) *String {
	return s.Substr(0, n)
}

// Right returns the last n codepoints.
func (s *String) Right(n CharIndex) *String {
	if n >= s.chars {
		return s.Clone()
	}
	return s.Substr(s.chars-n, n)
}
