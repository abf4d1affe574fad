// Package history implements bounded undo/redo stacks.
package history

// Ring is a fixed-capacity stack. Pushing onto a full ring evicts the oldest
// element, so the most recent Cap() pushes are always retained.
type Ring[T any] struct {
	buf  []T
	head int // index of the oldest element
	size int
}

// NewRing creates a ring holding at most capacity elements
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Cap returns the maximum number of elements
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Len returns the current number of elements
func (r *Ring[T]) Len() int {
	return r.size
}

// Push adds v on top, evicting the bottom element when full
func (r *Ring[T]) Push(v T) {
	if r.size == len(r.buf) {
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)
		return
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
}

// Pop removes and returns the top element
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	idx := (r.head + r.size - 1) % len(r.buf)
	v := r.buf[idx]
	r.buf[idx] = zero
	r.size--
	return v, true
}

// Clear removes all elements
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}
