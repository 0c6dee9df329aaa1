package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Locale != "und" || s.FloatPrecision != 2 || s.IntegerBase != 10 {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.toml",
		"locale = \"de\"\nfloat_precision = 4\ninteger_base = 16\n")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Locale != "de" || s.FloatPrecision != 4 || s.IntegerBase != 16 {
		t.Errorf("loaded %+v", s)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.yaml",
		"locale: es\nfloat_precision: 3\ninteger_base: 8\n")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Locale != "es" || s.FloatPrecision != 3 || s.IntegerBase != 8 {
		t.Errorf("loaded %+v", s)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadBadContent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "settings.toml", "locale = [broken\n")
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr error
	}{
		{"bad locale", Settings{Locale: "not a tag!!"}, ErrBadLocale},
		{"base too small", Settings{Locale: "en", IntegerBase: 1}, ErrBadBase},
		{"base too large", Settings{Locale: "en", IntegerBase: 37}, ErrBadBase},
		{"negative precision", Settings{Locale: "en", FloatPrecision: -1}, ErrBadPrecision},
		{"zero base allowed", Settings{Locale: "en"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTag(t *testing.T) {
	s := Settings{Locale: "de"}
	tag, err := s.Tag()
	if err != nil {
		t.Fatal(err)
	}
	if tag.String() != "de" {
		t.Errorf("Tag = %v", tag)
	}

	if _, err := (Settings{Locale: "!!"}).Tag(); !errors.Is(err, ErrBadLocale) {
		t.Errorf("bad tag error = %v", err)
	}
}
