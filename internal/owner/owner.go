// Package owner provides transfer-only exclusive ownership of a value
// with attached cleanup.
//
// Ownership moves explicitly via Transfer, which empties the source;
// there is no copy operation, so the double-cleanup hazard of a copied
// owning pointer cannot arise. Using an emptied owner observably
// returns (zero, false) rather than misbehaving.
package owner

import "sync"

// Owned holds a value exclusively until it is transferred or closed.
type Owned[T any] struct {
	mu      sync.Mutex
	val     T
	cleanup func(T)
	owns    bool
}

// New creates an owner for v. cleanup runs exactly once, on Close of
// whichever owner holds the value at that time. A nil cleanup is
// allowed.
func New[T any](v T, cleanup func(T)) *Owned[T] {
	return &Owned[T]{val: v, cleanup: cleanup, owns: true}
}

// Value returns the owned value, or (zero, false) after the value has
// been transferred away or closed.
func (o *Owned[T]) Value() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.owns {
		var zero T
		return zero, false
	}
	return o.val, true
}

// Owns returns true while this owner holds the value.
func (o *Owned[T]) Owns() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.owns
}

// Transfer moves ownership to a new owner and empties the receiver.
// Transferring from an emptied owner yields an owner that owns nothing.
func (o *Owned[T]) Transfer() *Owned[T] {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := &Owned[T]{val: o.val, cleanup: o.cleanup, owns: o.owns}
	var zero T
	o.val = zero
	o.cleanup = nil
	o.owns = false
	return next
}

// Close runs the cleanup if the receiver still owns the value.
// Closing an emptied owner is a no-op. Close is idempotent.
func (o *Owned[T]) Close() {
	o.mu.Lock()
	if !o.owns {
		o.mu.Unlock()
		return
	}
	val, cleanup := o.val, o.cleanup
	var zero T
	o.val = zero
	o.cleanup = nil
	o.owns = false
	o.mu.Unlock()

	if cleanup != nil {
		cleanup(val)
	}
}
