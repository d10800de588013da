package list

import (
	"github.com/wippyai/memtable/alloc"
	"github.com/wippyai/memtable/errors"
)

// Dynamic is an unbounded slice-backed list. The zero value is ready
// to use.
type Dynamic[T any] struct {
	items     []T
	preferred int
}

// NewDynamic creates an empty dynamic list.
func NewDynamic[T any]() *Dynamic[T] {
	return &Dynamic[T]{}
}

// NewDynamicFrom creates a dynamic list owning the given elements.
func NewDynamicFrom[T any](items []T) *Dynamic[T] {
	return &Dynamic[T]{items: items}
}

// Len returns the current element count.
func (l *Dynamic[T]) Len() int {
	return len(l.items)
}

// Cap returns an unbounded capacity with the preferred hint.
func (l *Dynamic[T]) Cap() Capacity {
	return Unbounded(l.preferred)
}

// SetPreferred records a sizing hint. It does not change the length.
func (l *Dynamic[T]) SetPreferred(n int) {
	if n < 0 {
		n = 0
	}
	l.preferred = n
	if cap(l.items) < n {
		grown := make([]T, len(l.items), n)
		copy(grown, l.items)
		l.items = grown
	}
}

// Get returns the element at i, or absence when i is out of range.
func (l *Dynamic[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Ref returns a pointer to the element at i, or nil when out of range.
func (l *Dynamic[T]) Ref(i int) *T {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return &l.items[i]
}

// Set replaces the element at i and returns the previous value.
func (l *Dynamic[T]) Set(i int, v T) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	old := l.items[i]
	l.items[i] = v
	return old, true
}

// Insert places v at i, shifting later elements right.
func (l *Dynamic[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return errors.OutOfRange(errors.AxisNone, i, len(l.items))
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	return nil
}

// Remove takes out the element at i and returns it.
func (l *Dynamic[T]) Remove(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	v := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v, true
}

// Push appends v. It never fails on a dynamic list.
func (l *Dynamic[T]) Push(v T) error {
	l.items = append(l.items, v)
	return nil
}

// Truncate shrinks the list to at most n elements, dropping the rest.
func (l *Dynamic[T]) Truncate(n int) {
	if n < 0 || n >= len(l.items) {
		return
	}
	for i := len(l.items) - 1; i >= n; i-- {
		alloc.Drop(l.items[i])
		var zero T
		l.items[i] = zero
	}
	l.items = l.items[:n]
}

// Resize grows or shrinks the list to exactly n elements.
func (l *Dynamic[T]) Resize(n int, fill func(i int) T) error {
	if n < 0 {
		return errors.OutOfRange(errors.AxisNone, n, len(l.items))
	}
	if n <= len(l.items) {
		l.Truncate(n)
		return nil
	}
	if fill == nil {
		return errors.InvalidData("growth requires a fill function")
	}
	for i := len(l.items); i < n; i++ {
		l.items = append(l.items, fill(i))
	}
	return nil
}

// Each calls fn for elements in index order until fn returns false.
func (l *Dynamic[T]) Each(fn func(i int, v T) bool) {
	for i, v := range l.items {
		if !fn(i, v) {
			return
		}
	}
}

// Drop releases every element, so containers of lists cascade
// cleanup to the cells.
func (l *Dynamic[T]) Drop() {
	l.Truncate(0)
}
