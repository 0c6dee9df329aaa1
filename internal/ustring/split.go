package ustring

import "bytes"

// Split partitions the String on every occurrence of the delimiter
// character, returning the non-empty fragments in original order.
//
// Empty fragments are dropped everywhere: a run of consecutive
// delimiters acts as a single separator, and leading or trailing
// delimiters produce no empty edge fragments. A String with no
// delimiter occurrence yields a single fragment equal to the whole
// value; an empty String or one made only of delimiters yields none.
func (s *String) Split(delim Char) []*String {
	if s.chars == 0 {
		return nil
	}

	var out []*String
	for _, piece := range bytes.Split(s.buf, []byte(delim.String())) {
		if len(piece) == 0 {
			continue
		}
		out = append(out, FromBytes(piece))
	}
	return out
}

// SplitStrings is Split with fragments returned as Go strings.
func (s *String) SplitStrings(delim Char) []string {
	frags := s.Split(delim)
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.String()
	}
	return out
}
