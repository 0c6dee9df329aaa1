package ustring

import (
	"unicode/utf8"

	"github.com/dshills/runetext/internal/iterate"
)

// CharIterator iterates over the characters of a String in order.
type CharIterator struct {
	s       *String
	off     int
	idx     CharIndex
	current Char
	size    int
	started bool
}

// Chars returns an iterator over all characters in the String.
func (s *String) Chars() *CharIterator {
	return &CharIterator{s: s}
}

// Next advances to the next character.
// Returns true if there is a character, false if iteration is complete.
func (it *CharIterator) Next() bool {
	if !it.started {
		it.started = true
	} else {
		it.off += it.size
		it.idx++
	}
	if it.off >= len(it.s.buf) {
		return false
	}
	r, size := utf8.DecodeRune(it.s.buf[it.off:])
	it.current = Char(r)
	it.size = size
	return size > 0
}

// Char returns the current character.
func (it *CharIterator) Char() Char {
	return it.current
}

// Index returns the codepoint index of the current character.
func (it *CharIterator) Index() CharIndex {
	return it.idx
}

// Reset rewinds the iterator to the start.
func (it *CharIterator) Reset() {
	it.off = 0
	it.idx = 0
	it.size = 0
	it.started = false
}

// forwardChars adapts a String to the iterate.ForwardIterator contract.
type forwardChars struct {
	it *CharIterator

	next    Char
	hasNext bool
}

// Forward returns the characters as an iterate.ForwardIterator, for
// callers that walk heterogeneous containers generically.
func (s *String) Forward() iterate.ForwardIterator[Char] {
	f := &forwardChars{it: s.Chars()}
	f.advance()
	return f
}

func (f *forwardChars) advance() {
	f.hasNext = f.it.Next()
	if f.hasNext {
		f.next = f.it.Char()
	}
}

// HasNext returns true while characters remain.
func (f *forwardChars) HasNext() bool {
	return f.hasNext
}

// Next returns the next character and advances.
// Calling Next with no characters left returns the zero Char.
func (f *forwardChars) Next() Char {
	if !f.hasNext {
		return 0
	}
	c := f.next
	f.advance()
	return c
}

// Reset rewinds to the first character.
func (f *forwardChars) Reset() {
	f.it.Reset()
	f.advance()
}
