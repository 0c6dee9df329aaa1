package script

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/runetext/internal/collate"
	"github.com/dshills/runetext/internal/ustring"
)

// ErrHostClosed reports use of a closed Host.
var ErrHostClosed = errors.New("script: host closed")

// Host owns a Lua state with the str module registered.
type Host struct {
	id     string
	state  *lua.LState
	closed bool
}

// NewHost creates a Lua host and registers the str module.
func NewHost() *Host {
	h := &Host{
		id:    uuid.New().String(),
		state: lua.NewState(),
	}
	h.register()
	return h
}

// ID returns the host's run identity.
func (h *Host) ID() string {
	return h.id
}

// Close releases the Lua state. Safe to call more than once.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}

// RunString executes Lua source.
func (h *Host) RunString(src string) error {
	if h.closed {
		return ErrHostClosed
	}
	if err := h.state.DoString(src); err != nil {
		return fmt.Errorf("script %s: %w", h.id, err)
	}
	return nil
}

// RunFile executes a Lua file.
func (h *Host) RunFile(path string) error {
	if h.closed {
		return ErrHostClosed
	}
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", h.id, err)
	}
	return nil
}

// register installs the str module into the Lua state.
func (h *Host) register() {
	L := h.state
	mod := L.NewTable()

	L.SetField(mod, "size", L.NewFunction(h.size))
	L.SetField(mod, "substr", L.NewFunction(h.substr))
	L.SetField(mod, "find", L.NewFunction(h.find))
	L.SetField(mod, "split", L.NewFunction(h.split))
	L.SetField(mod, "contains", L.NewFunction(h.contains))
	L.SetField(mod, "width", L.NewFunction(h.width))
	L.SetField(mod, "less", L.NewFunction(h.less))
	L.SetField(mod, "compare", L.NewFunction(h.compare))
	L.SetField(mod, "to_int", L.NewFunction(h.toInt))
	L.SetField(mod, "to_float", L.NewFunction(h.toFloat))
	L.SetField(mod, "number", L.NewFunction(h.number))
	L.SetField(mod, "number_float", L.NewFunction(h.numberFloat))

	L.SetGlobal("str", mod)
}

// size(s) -> number
// Returns the codepoint count, never the byte count.
func (h *Host) size(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	L.Push(lua.LNumber(s.Size()))
	return 1
}

// substr(s, start, len) -> string
// Codepoint range [start, start+len), 0-based, clipped to the value.
func (h *Host) substr(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	start := L.CheckInt(2)
	length := L.CheckInt(3)
	L.Push(lua.LString(s.Substr(start, length).String()))
	return 1
}

// find(s, needle) -> number
// 0-based codepoint index of the first occurrence, or -1.
func (h *Host) find(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	needle := L.CheckString(2)
	L.Push(lua.LNumber(s.FindString(needle)))
	return 1
}

// split(s, delim) -> table
// Non-empty fragments in original order; empty fragments are dropped.
func (h *Host) split(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	delim := firstChar(L, 2)

	out := L.NewTable()
	for _, frag := range s.SplitStrings(delim) {
		out.Append(lua.LString(frag))
	}
	L.Push(out)
	return 1
}

// contains(s, ch) -> boolean
func (h *Host) contains(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	L.Push(lua.LBool(s.Contains(firstChar(L, 2))))
	return 1
}

// width(s) -> number
// Terminal cell width in a monospace font.
func (h *Host) width(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	L.Push(lua.LNumber(s.Width()))
	return 1
}

// less(a, b) -> boolean
// Collation order under the process-wide locale.
func (h *Host) less(L *lua.LState) int {
	a := ustring.FromString(L.CheckString(1))
	b := ustring.FromString(L.CheckString(2))
	L.Push(lua.LBool(a.Less(b)))
	return 1
}

// compare(a, b) -> number
// -1, 0, or 1 under the process-wide collation order.
func (h *Host) compare(L *lua.LState) int {
	a := ustring.FromString(L.CheckString(1))
	b := ustring.FromString(L.CheckString(2))
	L.Push(lua.LNumber(a.Compare(b)))
	return 1
}

// to_int(s) -> number, boolean
// Zero and false on any parse failure.
func (h *Host) toInt(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	v, ok := s.ToInt64()
	L.Push(lua.LNumber(v))
	L.Push(lua.LBool(ok))
	return 2
}

// to_float(s) -> number, boolean
// Parses under the process-wide number locale.
func (h *Host) toFloat(L *lua.LState) int {
	s := ustring.FromString(L.CheckString(1))
	v, ok := s.ToFloat64()
	L.Push(lua.LNumber(v))
	L.Push(lua.LBool(ok))
	return 2
}

// number(n [, base]) -> string
// Integer rendering in base 2-36, default 10.
func (h *Host) number(L *lua.LState) int {
	v := L.CheckInt64(1)
	base := L.OptInt(2, 10)
	L.Push(lua.LString(ustring.NumberInBase(v, base).String()))
	return 1
}

// number_float(v [, fmt, prec]) -> string
// fmt is "f" or "g"; omitted means the trimmed default rendering.
func (h *Host) numberFloat(L *lua.LState) int {
	v := float64(L.CheckNumber(1))
	format := L.OptString(2, "")
	prec := L.OptInt(3, -1)

	var rendered *ustring.String
	if format == "" {
		rendered = ustring.NumberFloat(v)
	} else {
		rendered = ustring.NumberFloatIn(collate.DefaultNumbers(), v, format[0], prec)
	}
	L.Push(lua.LString(rendered.String()))
	return 1
}

// firstChar extracts the first character of a Lua string argument,
// raising a Lua error for an empty one.
func firstChar(L *lua.LState, n int) ustring.Char {
	arg := L.CheckString(n)
	s := ustring.FromString(arg)
	c, ok := s.At(0)
	if !ok {
		L.ArgError(n, "expected a non-empty string")
	}
	return c
}
