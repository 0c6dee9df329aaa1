package ustring

import (
	"strings"
	"unicode/utf8"
)

// Append appends another String's content in place and returns the
// receiver for chaining. Concatenating two valid UTF-8 buffers by raw
// byte copy is correct: sequences never straddle the copy point.
func (s *String) Append(other *String) *String {
	if other == nil || other.chars == 0 {
		return s
	}
	s.buf = append(s.buf, other.buf...)
	s.chars += other.chars
	return s
}

// AppendString appends a Go string in place.
// Invalid UTF-8 in the input is replaced with U+FFFD.
func (s *String) AppendString(str string) *String {
	if str == "" {
		return s
	}
	str = strings.ToValidUTF8(str, string(utf8.RuneError))
	s.buf = append(s.buf, str...)
	s.chars += utf8.RuneCountInString(str)
	return s
}

// AppendChar appends a single character in place.
func (s *String) AppendChar(c Char) *String {
	return s.AppendString(c.String())
}

// Prepend inserts another String's content at codepoint offset 0 and
// returns the receiver for chaining.
func (s *String) Prepend(other *String) *String {
	if other == nil || other.chars == 0 {
		return s
	}
	return s.prependBytes(other.buf, other.chars)
}

// PrependString inserts a Go string at codepoint offset 0.
// Invalid UTF-8 in the input is replaced with U+FFFD.
func (s *String) PrependString(str string) *String {
	if str == "" {
		return s
	}
	str = strings.ToValidUTF8(str, string(utf8.RuneError))
	return s.prependBytes([]byte(str), utf8.RuneCountInString(str))
}

// PrependChar inserts a single character at codepoint offset 0.
func (s *String) PrependChar(c Char) *String {
	return s.PrependString(c.String())
}

func (s *String) prependBytes(pre []byte, chars int) *String {
	buf := make([]byte, 0, len(pre)+len(s.buf))
	buf = append(buf, pre...)
	buf = append(buf, s.buf...)
	s.buf = buf
	s.chars += chars
	s.resetCache()
	return s
}

// Concat produces a new String holding the receiver's content followed
// by other's. Neither operand is mutated.
func (s *String) Concat(other *String) *String {
	out := s.Clone()
	return out.Append(other)
}

// ConcatString produces a new String with a Go string appended.
// Neither operand is mutated.
func (s *String) ConcatString(str string) *String {
	out := s.Clone()
	return out.AppendString(str)
}

// ConcatChar produces a new String with a single character appended.
// The receiver is not mutated.
func (s *String) ConcatChar(c Char) *String {
	out := s.Clone()
	return out.AppendChar(c)
}
