package list

import (
	"github.com/wippyai/memtable/alloc"
	"github.com/wippyai/memtable/errors"
)

// Fixed is a list whose backing storage is allocated once at capacity
// max. The virtual length tracks how many slots are live; reads past
// it report absence even though the storage exists. Slots released by
// shrinking are zeroed so stale values are never observable.
type Fixed[T any] struct {
	items  []T // len(items) == max, always
	length int // virtual length, 0 <= length <= max
}

// NewFixed creates an empty fixed list with capacity max.
func NewFixed[T any](max int) *Fixed[T] {
	if max < 0 {
		max = 0
	}
	return &Fixed[T]{items: make([]T, max)}
}

// NewFixedWith creates a fixed list with capacity max and all slots
// live, building each element through the fallible construction
// protocol. On failure the built prefix is dropped and an error is
// returned.
func NewFixedWith[T any](max int, fn func(i int) (T, error)) (*Fixed[T], error) {
	if max < 0 {
		max = 0
	}
	items, err := alloc.Slice(max, fn)
	if err != nil {
		return nil, err
	}
	return &Fixed[T]{items: items, length: max}, nil
}

// Len returns the virtual length.
func (l *Fixed[T]) Len() int {
	return l.length
}

// Cap returns the bounded capacity descriptor.
func (l *Fixed[T]) Cap() Capacity {
	return Bounded(len(l.items))
}

// Get returns the element at i, or absence when i is past the virtual
// length.
func (l *Fixed[T]) Get(i int) (T, bool) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Ref returns a pointer to the element at i, or nil when i is past
// the virtual length.
func (l *Fixed[T]) Ref(i int) *T {
	if i < 0 || i >= l.length {
		return nil
	}
	return &l.items[i]
}

// Set replaces the element at i and returns the previous value.
func (l *Fixed[T]) Set(i int, v T) (T, bool) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, false
	}
	old := l.items[i]
	l.items[i] = v
	return old, true
}

// Insert places v at i, shifting later elements right. Fails when the
// list is full.
func (l *Fixed[T]) Insert(i int, v T) error {
	if i < 0 || i > l.length {
		return errors.OutOfRange(errors.AxisNone, i, l.length)
	}
	if l.length == len(l.items) {
		return errors.CapacityExceeded(errors.AxisNone, len(l.items))
	}
	copy(l.items[i+1:l.length+1], l.items[i:l.length])
	l.items[i] = v
	l.length++
	return nil
}

// Remove takes out the element at i, shifting later elements left.
// The freed slot is zeroed.
func (l *Fixed[T]) Remove(i int) (T, bool) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, false
	}
	v := l.items[i]
	copy(l.items[i:l.length-1], l.items[i+1:l.length])
	var zero T
	l.items[l.length-1] = zero
	l.length--
	return v, true
}

// Push appends v. Fails when the list is full.
func (l *Fixed[T]) Push(v T) error {
	if l.length == len(l.items) {
		return errors.CapacityExceeded(errors.AxisNone, len(l.items))
	}
	l.items[l.length] = v
	l.length++
	return nil
}

// Truncate shrinks the virtual length to at most n, dropping and
// zeroing the released slots.
func (l *Fixed[T]) Truncate(n int) {
	if n < 0 || n >= l.length {
		return
	}
	for i := l.length - 1; i >= n; i-- {
		alloc.Drop(l.items[i])
		var zero T
		l.items[i] = zero
	}
	l.length = n
}

// Resize grows or shrinks the virtual length to exactly n. Growth
// fills the new slots via fill. Fails when n exceeds the capacity.
func (l *Fixed[T]) Resize(n int, fill func(i int) T) error {
	if n < 0 {
		return errors.OutOfRange(errors.AxisNone, n, l.length)
	}
	if n > len(l.items) {
		return errors.CapacityExceeded(errors.AxisNone, len(l.items))
	}
	if n <= l.length {
		l.Truncate(n)
		return nil
	}
	if fill == nil {
		return errors.InvalidData("growth requires a fill function")
	}
	for i := l.length; i < n; i++ {
		l.items[i] = fill(i)
	}
	l.length = n
	return nil
}

// Each calls fn for live elements in index order until fn returns
// false.
func (l *Fixed[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < l.length; i++ {
		if !fn(i, l.items[i]) {
			return
		}
	}
}

// Drop releases every live element, so containers of lists cascade
// cleanup to the cells.
func (l *Fixed[T]) Drop() {
	l.Truncate(0)
}
