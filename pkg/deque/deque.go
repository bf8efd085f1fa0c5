// Package deque provides a ring-buffer backed double-ended queue.
package deque

// Deque is a growable double-ended queue. The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// New returns a deque with room for n elements before the first grow.
func New[T any](n int) *Deque[T] {
	if n < 1 {
		n = 1
	}
	return &Deque[T]{buf: make([]T, n)}
}

// Len returns the number of queued elements.
func (d *Deque[T]) Len() int { return d.count }

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = v
	d.count++
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.wrap(d.head+d.count)] = v
	d.count++
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.count--
	return v, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	i := d.wrap(d.head + d.count - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.count--
	return v, true
}

func (d *Deque[T]) wrap(i int) int {
	n := len(d.buf)
	return ((i % n) + n) % n
}

func (d *Deque[T]) grow() {
	if len(d.buf) == 0 {
		d.buf = make([]T, 8)
		return
	}
	if d.count < len(d.buf) {
		return
	}
	next := make([]T, len(d.buf)*2)
	for i := 0; i < d.count; i++ {
		next[i] = d.buf[d.wrap(d.head+i)]
	}
	d.buf = next
	d.head = 0
}
