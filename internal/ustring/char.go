package ustring

import "unicode/utf8"

// Char represents exactly one Unicode scalar value.
// It is the atomic unit for Contains, Split delimiters, and
// single-character append/prepend.
type Char rune

// Replacement is substituted for values that are not valid Unicode
// scalar values (surrogates and values above 0x10FFFF).
const Replacement Char = Char(utf8.RuneError)

// CharOf creates a Char from a rune.
// Invalid scalar values become Replacement.
func CharOf(r rune) Char {
	if !utf8.ValidRune(r) {
		return Replacement
	}
	return Char(r)
}

// CharFromByte creates a Char from a single byte.
// Bytes below 0x80 are the ASCII fast path; higher bytes map to the
// Latin-1 codepoint of the same value.
func CharFromByte(b byte) Char {
	return Char(rune(b))
}

// Rune returns the scalar value as a rune.
func (c Char) Rune() rune {
	return rune(c)
}

// Valid returns true if c is a valid Unicode scalar value.
func (c Char) Valid() bool {
	return utf8.ValidRune(rune(c))
}

// IsASCII returns true if c fits in a single encoded byte.
func (c Char) IsASCII() bool {
	return c >= 0 && c < utf8.RuneSelf
}

// EncodedLen returns the number of bytes (1-4) the character occupies
// in the UTF-8 encoded form.
func (c Char) EncodedLen() int {
	n := utf8.RuneLen(rune(c))
	if n < 0 {
		return utf8.RuneLen(utf8.RuneError)
	}
	return n
}

// String returns the character encoded as UTF-8.
func (c Char) String() string {
	if !c.Valid() {
		return string(utf8.RuneError)
	}
	return string(rune(c))
}
