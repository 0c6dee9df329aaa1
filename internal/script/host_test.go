package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHostLifecycle(t *testing.T) {
	h := NewHost()
	if h.ID() == "" {
		t.Error("host should have an ID")
	}
	h.Close()
	h.Close() // idempotent

	if err := h.RunString("return"); err == nil {
		t.Error("closed host should refuse to run")
	}
}

func TestStrModule(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"size counts codepoints", `assert(str.size("Tést") == 4)`},
		{"size multi-script", `assert(str.size("ЂЉЊЋЏђљњћџ") == 10)`},
		{"substr", `assert(str.substr("𝛏𝛏Tést𝛏𝛏", 2, 4) == "Tést")`},
		{"substr clips", `assert(str.substr("Hello", 1, 10) == "ello")`},
		{"find", `assert(str.find("Thisisalongtestwithspécialchársinside", "spécialchárs") == 19)`},
		{"find absent", `assert(str.find("TéstTest", "Kest") == -1)`},
		{"split drops empties", `
			local parts = str.split(";a;b;", ";")
			assert(#parts == 2)
			assert(parts[1] == "a")
			assert(parts[2] == "b")`},
		{"split no delimiter", `
			local parts = str.split("No split at all", "w")
			assert(#parts == 1)
			assert(parts[1] == "No split at all")`},
		{"contains", `assert(str.contains("Hello", "H"))
			assert(not str.contains("Hello", "h"))`},
		{"to_int ok", `
			local v, ok = str.to_int("123")
			assert(ok and v == 123)`},
		{"to_int fails", `
			local v, ok = str.to_int("Cannot convert")
			assert(not ok and v == 0)`},
		{"to_float", `
			local v, ok = str.to_float("1.55")
			assert(ok)
			assert(math.abs(v - 1.55) < 1e-9)`},
		{"number", `assert(str.number(15) == "15")
			assert(str.number(-15) == "-15")
			assert(str.number(31, 16) == "1f")
			assert(str.number(4, 2) == "100")`},
		{"number_float default", `assert(str.number_float(1.578) == "1.58")`},
		{"number_float g", `assert(str.number_float(1.578, "g", 4) == "1.578")`},
		{"less collation", `assert(str.less("ñ", "z"))
			assert(str.less("é", "j"))`},
		{"compare", `assert(str.compare("a", "a") == 0)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHost()
			defer h.Close()
			if err := h.RunString(tt.src); err != nil {
				t.Errorf("script failed: %v", err)
			}
		})
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "check.lua")
	src := `assert(str.size("てすと") == 3)`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewHost()
	defer h.Close()
	if err := h.RunFile(path); err != nil {
		t.Errorf("RunFile: %v", err)
	}

	if err := h.RunFile(filepath.Join(dir, "absent.lua")); err == nil {
		t.Error("missing file should error")
	}
}

func TestScriptErrorsCarryHostID(t *testing.T) {
	h := NewHost()
	defer h.Close()

	err := h.RunString(`error("boom")`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), h.ID()) {
		t.Errorf("error %q should name the host", err)
	}
}

func TestSplitRejectsEmptyDelimiter(t *testing.T) {
	h := NewHost()
	defer h.Close()
	if err := h.RunString(`str.split("a;b", "")`); err == nil {
		t.Error("empty delimiter should raise")
	}
}
