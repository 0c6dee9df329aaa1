package collate

import (
	xcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is a pure comparison strategy over UTF-8 strings.
// Compare returns a negative value if a sorts before b, zero if they
// rank as equivalent, and a positive value otherwise.
type Order interface {
	Compare(a, b string) int
}

// localeOrder delegates to the Unicode collation tables for a language.
type localeOrder struct {
	c *xcollate.Collator
}

// New returns an Order using the collation rules of the given language.
// language.Und gives the root collation, which already ranks accented
// and tilded letters with their base letters ("é" < "j", "ñ" < "z").
func New(tag language.Tag) Order {
	return &localeOrder{c: xcollate.New(tag)}
}

func (o *localeOrder) Compare(a, b string) int {
	return o.c.CompareString(a, b)
}

// binaryOrder compares raw encoded bytes.
type binaryOrder struct{}

// Binary returns an Order over raw codepoint values. It is deterministic
// and table-free, for tests and contexts where linguistic ranking is
// unwanted.
func Binary() Order {
	return binaryOrder{}
}

func (binaryOrder) Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
