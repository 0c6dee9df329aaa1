package collate

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrBadNumber reports text that is not a valid numeric literal under
// the locale's conventions.
var ErrBadNumber = errors.New("collate: not a valid number")

// NumberLocale captures a locale's decimal-separator convention for
// numeric parse and format. The zero value behaves like the C locale
// (separator '.').
type NumberLocale struct {
	tag language.Tag
	dec rune
}

// Numbers derives the number conventions for a language by probing the
// locale's rendering of a fractional value.
func Numbers(tag language.Tag) NumberLocale {
	p := message.NewPrinter(tag)
	rendered := p.Sprint(number.Decimal(1.1))

	dec := '.'
	for _, r := range rendered {
		if r < '0' || r > '9' {
			dec = r
			break
		}
	}
	return NumberLocale{tag: tag, dec: dec}
}

// DecimalSeparator returns the locale's decimal separator.
func (l NumberLocale) DecimalSeparator() rune {
	if l.dec == 0 {
		return '.'
	}
	return l.dec
}

// Localize maps a canonical rendering (separator '.') to the locale's
// separator.
func (l NumberLocale) Localize(s string) string {
	sep := l.DecimalSeparator()
	if sep == '.' {
		return s
	}
	return strings.ReplaceAll(s, ".", string(sep))
}

// ParseFloat parses a floating literal written with the locale's
// decimal separator. The entire string must be a valid literal; hex
// floats, "Inf" and "NaN" spellings are rejected along with anything
// carrying trailing garbage.
func (l NumberLocale) ParseFloat(s string, bitSize int) (float64, error) {
	if s == "" {
		return 0, ErrBadNumber
	}
	for _, r := range s {
		if !l.numeralRune(r) {
			return 0, ErrBadNumber
		}
	}

	sep := l.DecimalSeparator()
	if sep != '.' {
		s = strings.ReplaceAll(s, string(sep), ".")
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, ErrBadNumber
	}
	return v, nil
}

// numeralRune reports whether r may appear in a plain decimal literal
// under this locale: digits, sign, exponent marker, and the locale's
// own separator.
func (l NumberLocale) numeralRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '+', '-', 'e', 'E':
		return true
	}
	return r == l.DecimalSeparator()
}
