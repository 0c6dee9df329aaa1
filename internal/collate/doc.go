// Package collate provides injectable ordering and number-locale
// strategies for the string engine.
//
// Ordering is a total order over scalar sequences defined by linguistic
// convention (Unicode collation via golang.org/x/text/collate), distinct
// from raw codepoint-value comparison. NumberLocale captures the
// decimal-separator convention used by numeric parse and format.
//
// Both are explicit strategy values passed at the call site; a
// process-wide default exists only for the outermost boundary (CLI,
// config) and is replaced atomically. Engine operations that omit a
// strategy read the default, which keeps the core testable without
// relying on ambient system configuration.
package collate
