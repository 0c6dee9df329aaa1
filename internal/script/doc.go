// Package script embeds a Lua interpreter exposing the string engine to
// scripts as the global `str` module.
//
// All positional arguments and results are codepoint units, 0-based,
// matching the engine contract. The host owns one Lua state; it is not
// safe for concurrent use.
package script
