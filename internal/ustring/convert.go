package ustring

import (
	"strconv"

	"github.com/dshills/runetext/internal/collate"
)

// Numeric conversion is all-or-nothing: the entire content must be a
// valid literal. A valid prefix followed by trailing garbage ("123abc")
// is a parse failure. On failure every converter returns zero and false.

// ToInt parses the content as a signed base-10 integer.
func (s *String) ToInt() (int, bool) {
	v, ok := s.ToInt64()
	if !ok || v != int64(int(v)) {
		return 0, false
	}
	return int(v), true
}

// ToInt64 parses the content as a signed 64-bit base-10 integer.
func (s *String) ToInt64() (int64, bool) {
	v, err := strconv.ParseInt(string(s.buf), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToUint64 parses the content as an unsigned 64-bit base-10 integer.
func (s *String) ToUint64() (uint64, bool) {
	v, err := strconv.ParseUint(string(s.buf), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToFloat32 parses the content as a floating literal under the
// process-wide number locale's decimal-separator convention.
func (s *String) ToFloat32() (float32, bool) {
	v, ok := s.ToFloat64In(collate.DefaultNumbers())
	if !ok {
		return 0, false
	}
	return float32(v), true
}

// ToFloat64 parses the content as a floating literal under the
// process-wide number locale's decimal-separator convention.
func (s *String) ToFloat64() (float64, bool) {
	return s.ToFloat64In(collate.DefaultNumbers())
}

// ToFloat64In parses under an explicit number locale, keeping conversion
// testable without ambient locale configuration.
func (s *String) ToFloat64In(loc collate.NumberLocale) (float64, bool) {
	v, err := loc.ParseFloat(string(s.buf), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
