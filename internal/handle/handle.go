// Package handle provides generation-counted references to arena slots.
//
// An Arena owns values in stable slots; a Ref is a (slot, generation)
// pair handed to observers. Releasing a slot bumps its generation, so
// every outstanding Ref to it dereferences to (zero, false) from then
// on. Dereference-after-release is observably safe without any live
// subscribe/unsubscribe relationship between owner and observers.
package handle

import "sync"

// Ref identifies a value in an Arena. The zero Ref never resolves.
type Ref struct {
	slot int
	gen  uint64
}

// IsZero returns true for the zero Ref.
func (r Ref) IsZero() bool {
	return r.gen == 0
}

type slot[T any] struct {
	val  T
	gen  uint64
	live bool
}

// Arena owns values and issues generation-counted Refs to them.
// Safe for concurrent use.
type Arena[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Put stores a value and returns a Ref to it.
// Released slots are reused; their bumped generation keeps stale Refs
// from resolving to the new occupant.
func (a *Arena[T]) Put(v T) Ref {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].val = v
		a.slots[idx].live = true
		return Ref{slot: idx, gen: a.slots[idx].gen}
	}

	a.slots = append(a.slots, slot[T]{val: v, gen: 1, live: true})
	return Ref{slot: len(a.slots) - 1, gen: 1}
}

// Get resolves a Ref. Returns the zero value and false if the Ref is
// zero, stale, or its slot has been released.
func (a *Arena[T]) Get(r Ref) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var zero T
	if r.gen == 0 || r.slot < 0 || r.slot >= len(a.slots) {
		return zero, false
	}
	s := a.slots[r.slot]
	if !s.live || s.gen != r.gen {
		return zero, false
	}
	return s.val, true
}

// Alive returns true while the Ref still resolves.
func (a *Arena[T]) Alive(r Ref) bool {
	_, ok := a.Get(r)
	return ok
}

// Release destroys the value behind the Ref and invalidates every
// outstanding Ref to its slot. Returns false if the Ref was already
// stale.
func (a *Arena[T]) Release(r Ref) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if r.gen == 0 || r.slot < 0 || r.slot >= len(a.slots) {
		return false
	}
	s := &a.slots[r.slot]
	if !s.live || s.gen != r.gen {
		return false
	}

	var zero T
	s.val = zero
	s.live = false
	s.gen++
	a.free = append(a.free, r.slot)
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.slots) - len(a.free)
}
