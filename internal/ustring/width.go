package ustring

import "github.com/rivo/uniseg"

// Width returns the number of terminal cells the content occupies in a
// monospace font. East Asian wide characters count as two cells. This
// is a display concern for surrounding tooling; it is not grapheme
// segmentation and plays no part in the codepoint index contract.
func (s *String) Width() int {
	return uniseg.StringWidth(string(s.buf))
}
