package ringbuffer

import "iter"

type RingBuffer[T any] struct {
	buf  []T
	head int
	tail int
	size int
}

// New creates a RingBuffer with the given capacity.
// A default capacity of 1 is used of the given value is zero.
func New[T any](capacity uint) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf: make([]T, max(1, capacity)),
	}
}

// Size returns the number of elements currently in the buffer.
func (r *RingBuffer[T]) Size() int {
	return r.size
}

// IsFull returns true if the queue is full.
func (r *RingBuffer[T]) IsFull() bool {
	return r.size == cap(r.buf)
}

// Push adds the provided item to the buffer. It returns false if the queue is full and a push cannot be done.
func (r *RingBuffer[T]) Push(item T) bool {
	if r.IsFull() {
		return false
	}

	r.buf[r.tail] = item
	r.tail = (r.tail + 1) % cap(r.buf)
	r.size++
	return true
}

// Pop removes and returns the oldest item. If empty, it returns (zero[T], false).
func (r *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	item := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % cap(r.buf)
	r.size--
	return item, true
}

// Back returns the newest item without removing it.
func (r *RingBuffer[T]) Back() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	return r.buf[r.index(r.size-1)], true
}

// DropBack discards the newest item from the buffer (if any) without returning it.
func (r *RingBuffer[T]) DropBack() {
	if r.size == 0 {
		return
	}
	r.tail = (r.tail - 1 + cap(r.buf)) % cap(r.buf)

	var zero T
	r.buf[r.tail] = zero
	r.size--
}

// Backward yields the items from newest to oldest. The buffer must not be
// modified while iterating.
func (r *RingBuffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := r.size - 1; i >= 0; i-- {
			if !yield(r.buf[r.index(i)]) {
				return
			}
		}
	}
}

// index maps the i-th item counted from the oldest one to its slot in buf.
func (r *RingBuffer[T]) index(i int) int {
	return (r.head + i) % cap(r.buf)
}
