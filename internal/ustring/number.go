package ustring

import (
	"strconv"

	"github.com/dshills/runetext/internal/collate"
)

// DefaultFloatFormat is the format verb used when no explicit format is
// given: fixed-point rounding trimmed to the shortest equal rendering.
const DefaultFloatFormat byte = 'f'

// defaultFloatPrecision rounds default renderings to two fraction
// digits before trimming, matching the engine's documented default.
const defaultFloatPrecision = 2

// Number formats a signed integer in base 10.
func Number(v int64) *String {
	return NumberInBase(v, 10)
}

// NumberUint formats an unsigned integer in base 10.
func NumberUint(v uint64) *String {
	return NumberUintInBase(v, 10)
}

// NumberInBase formats a signed integer in the given base (2-36), with
// lowercase digits above 9, no base prefix, and a leading minus sign for
// negative values only. Bases outside 2-36 are clamped.
func NumberInBase(v int64, base int) *String {
	return FromString(strconv.FormatInt(v, clampBase(base)))
}

// NumberUintInBase formats an unsigned integer in the given base (2-36).
func NumberUintInBase(v uint64, base int) *String {
	return FromString(strconv.FormatUint(v, clampBase(base)))
}

// NumberFloat formats a floating value at the default precision under
// the process-wide number locale: rounded to two fraction digits, then
// trimmed, so 1.578 renders as "1.58" and 2.0 as "2".
func NumberFloat(v float64) *String {
	return NumberFloatIn(collate.DefaultNumbers(), v, DefaultFloatFormat, -1)
}

// NumberFloatFormat formats a floating value with an explicit format
// verb and precision under the process-wide number locale. Verb 'f' is
// fixed-point with prec fraction digits; 'g' uses prec significant
// digits. A negative prec selects the trimmed default rendering.
func NumberFloatFormat(v float64, format byte, prec int) *String {
	return NumberFloatIn(collate.DefaultNumbers(), v, format, prec)
}

// NumberFloatIn formats under an explicit number locale.
func NumberFloatIn(loc collate.NumberLocale, v float64, format byte, prec int) *String {
	if format != 'f' && format != 'g' {
		format = DefaultFloatFormat
	}
	if prec < 0 {
		out := strconv.FormatFloat(v, 'f', defaultFloatPrecision, 64)
		out = trimFraction(out)
		return FromString(loc.Localize(out))
	}
	return FromString(loc.Localize(strconv.FormatFloat(v, format, prec, 64)))
}

// SetNumber replaces the content with the base-10 rendering of v,
// returning the receiver for chaining.
func (s *String) SetNumber(v int64) *String {
	return s.Clear().Append(Number(v))
}

// SetNumberFloat replaces the content with the default float rendering.
func (s *String) SetNumberFloat(v float64) *String {
	return s.Clear().Append(NumberFloat(v))
}

func clampBase(base int) int {
	if base < 2 {
		return 2
	}
	if base > 36 {
		return 36
	}
	return base
}

// trimFraction drops trailing zeros after the decimal point, and the
// point itself when nothing remains behind it.
func trimFraction(s string) string {
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+1 && s[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return s[:end]
}
