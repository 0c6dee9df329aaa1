package owner

import "testing"

func TestValue(t *testing.T) {
	o := New("resource", nil)
	v, ok := o.Value()
	if !ok || v != "resource" {
		t.Errorf("Value = (%q, %v)", v, ok)
	}
	if !o.Owns() {
		t.Error("fresh owner should own")
	}
}

func TestTransferMovesOwnership(t *testing.T) {
	closed := 0
	a := New("resource", func(string) { closed++ })
	b := a.Transfer()

	if a.Owns() {
		t.Error("source should be empty after Transfer")
	}
	if v, ok := a.Value(); ok || v != "" {
		t.Errorf("emptied owner Value = (%q, %v)", v, ok)
	}
	if v, ok := b.Value(); !ok || v != "resource" {
		t.Errorf("new owner Value = (%q, %v)", v, ok)
	}

	// Cleanup travels with ownership and runs once.
	a.Close()
	if closed != 0 {
		t.Error("closing the emptied owner must not run cleanup")
	}
	b.Close()
	if closed != 1 {
		t.Errorf("cleanup ran %d times, want 1", closed)
	}
}

func TestCloseIdempotent(t *testing.T) {
	closed := 0
	o := New(42, func(int) { closed++ })
	o.Close()
	o.Close()
	if closed != 1 {
		t.Errorf("cleanup ran %d times, want 1", closed)
	}
	if o.Owns() {
		t.Error("closed owner should not own")
	}
}

func TestTransferFromEmpty(t *testing.T) {
	o := New(1, nil)
	o.Close()
	next := o.Transfer()
	if next.Owns() {
		t.Error("transfer from an emptied owner should own nothing")
	}
	if _, ok := next.Value(); ok {
		t.Error("Value on a never-owning owner should fail")
	}
}

func TestNilCleanup(t *testing.T) {
	o := New("x", nil)
	o.Close() // must not panic
	if o.Owns() {
		t.Error("closed owner should not own")
	}
}
