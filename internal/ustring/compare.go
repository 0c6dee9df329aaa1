package ustring

import "github.com/dshills/runetext/internal/collate"

// Compare orders the receiver against other using the process-wide
// collation order. It returns -1, 0, or 1. Equality checks should use
// Equal instead: collation may rank distinct contents as equivalent.
func (s *String) Compare(other *String) int {
	return s.CompareWith(collate.Default(), other)
}

// CompareWith orders the receiver against other under an explicit
// collation strategy, keeping ordering testable without ambient locale
// configuration.
func (s *String) CompareWith(order collate.Order, other *String) int {
	var o string
	if other != nil {
		o = string(other.buf)
	}
	return order.Compare(string(s.buf), o)
}

// Less reports s < other under the process-wide collation order.
func (s *String) Less(other *String) bool {
	return s.Compare(other) < 0
}

// LessEqual reports s <= other under the process-wide collation order.
func (s *String) LessEqual(other *String) bool {
	return s.Compare(other) <= 0
}

// Greater reports s > other under the process-wide collation order.
func (s *String) Greater(other *String) bool {
	return s.Compare(other) > 0
}

// GreaterEqual reports s >= other under the process-wide collation order.
func (s *String) GreaterEqual(other *String) bool {
	return s.Compare(other) >= 0
}
