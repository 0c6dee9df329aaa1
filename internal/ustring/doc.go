// Package ustring provides a Unicode-aware string engine.
//
// A String stores text as a validated UTF-8 byte buffer while every public
// positional operation (indexing, slicing, searching, splitting) works in
// codepoints, never bytes. Char is the supporting scalar type representing a
// single Unicode scalar value.
//
// Key guarantees:
//   - The buffer is always valid UTF-8; no operation can produce a partial
//     multi-byte sequence
//   - Size reports codepoints; the byte length is an internal detail
//   - Out-of-range indices yield empty results or the NotFound sentinel,
//     never a panic
//   - Numeric conversion reports failure through an ok flag and returns zero
//
// Basic usage:
//
//	s := ustring.FromString("Tést")
//	n := s.Size()                  // 4
//	sub := s.Substr(1, 2)          // "és"
//	i := s.FindString("st")        // 2
//
// Ordering delegates to the collate package so linguistic comparison is
// injectable; the default is the process-wide order.
package ustring
