// Package trail implements the fixed-capacity trailing-path buffer used by
// animated scenes: once full, pushing a point evicts the oldest one.
package trail

// DefaultCap matches the trail length the scenes were tuned for.
const DefaultCap = 150

// Ring is a FIFO ring buffer with a fixed capacity.
type Ring[T any] struct {
	buf  []T
	head int
	n    int
}

// New returns a Ring holding at most capacity elements. A capacity below 1
// is treated as 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest element when full.
func (r *Ring[T]) Push(v T) {
	tail := (r.head + r.n) % len(r.buf)
	r.buf[tail] = v
	if r.n < len(r.buf) {
		r.n++
	} else {
		r.head = (r.head + 1) % len(r.buf)
	}
}

// Len returns the number of buffered elements.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Points returns the buffered elements oldest first.
func (r *Ring[T]) Points() []T {
	out := make([]T, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// Last returns the most recently pushed element, if any.
func (r *Ring[T]) Last() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	return r.buf[(r.head+r.n-1)%len(r.buf)], true
}

// Clear empties the buffer without releasing storage.
func (r *Ring[T]) Clear() {
	r.head = 0
	r.n = 0
}
