// Package iterate defines a minimal forward-iteration contract used
// wherever the library walks heterogeneous containers generically.
package iterate

// ForwardIterator walks a sequence front to back.
// Next past the end returns the zero value; HasNext guards it.
type ForwardIterator[T any] interface {
	// HasNext returns true while elements remain.
	HasNext() bool

	// Next returns the next element and advances.
	Next() T

	// Reset rewinds to the first element.
	Reset()
}

// SliceIterator adapts a slice to the ForwardIterator contract.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// Slice returns a ForwardIterator over the given elements.
// The slice is not copied; the caller must not mutate it mid-walk.
func Slice[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items}
}

// HasNext returns true while elements remain.
func (it *SliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

// Next returns the next element and advances.
func (it *SliceIterator[T]) Next() T {
	if it.pos >= len(it.items) {
		var zero T
		return zero
	}
	v := it.items[it.pos]
	it.pos++
	return v
}

// Reset rewinds to the first element.
func (it *SliceIterator[T]) Reset() {
	it.pos = 0
}

// Collect drains an iterator into a slice.
func Collect[T any](it ForwardIterator[T]) []T {
	var out []T
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}
