package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReloaderDeliversUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("locale = \"en\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReloader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := os.WriteFile(path, []byte("locale = \"de\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-r.Updates():
		if s.Locale != "de" {
			t.Errorf("update locale = %q, want de", s.Locale)
		}
	case err := <-r.Errors():
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for update")
	}
}

func TestReloaderReportsBadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("locale = \"en\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReloader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := os.WriteFile(path, []byte("locale = [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-r.Errors():
		// Expected: parse failure surfaces, previous settings stay.
	case s := <-r.Updates():
		t.Fatalf("broken settings applied: %+v", s)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestReloaderCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReloader(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
