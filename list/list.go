package list

// Capacity describes one axis of a container. Max < 0 means the axis
// is unbounded; Max >= 0 fixes the axis at construction time.
// Preferred is a sizing hint and is clamped to Max when bounded.
type Capacity struct {
	Preferred int
	Max       int
}

// Unbounded returns a capacity with no upper limit.
func Unbounded(preferred int) Capacity {
	if preferred < 0 {
		preferred = 0
	}
	return Capacity{Preferred: preferred, Max: -1}
}

// Bounded returns a capacity fixed at max.
func Bounded(max int) Capacity {
	if max < 0 {
		max = 0
	}
	return Capacity{Preferred: max, Max: max}
}

// IsBounded reports whether the axis has a fixed upper limit.
func (c Capacity) IsBounded() bool {
	return c.Max >= 0
}

// Fits reports whether a length of n respects the capacity.
func (c Capacity) Fits(n int) bool {
	return c.Max < 0 || n <= c.Max
}

// Clamp limits n to [0, Max] for bounded capacities and to [0, inf)
// otherwise.
func (c Capacity) Clamp(n int) int {
	if n < 0 {
		return 0
	}
	if c.Max >= 0 && n > c.Max {
		return c.Max
	}
	return n
}

// List is the sequence contract shared by the dynamic and fixed
// backing stores. Reads past the current length report absence
// instead of failing; mutations that would violate the capacity
// return a typed error and leave the list unchanged.
type List[T any] interface {
	// Len returns the current element count.
	Len() int

	// Cap returns the capacity descriptor for this list.
	Cap() Capacity

	// Get returns the element at i, or absence when i is out of range.
	Get(i int) (T, bool)

	// Ref returns a pointer to the element at i for in-place
	// mutation, or nil when i is out of range.
	Ref(i int) *T

	// Set replaces the element at i and returns the previous value.
	// Out-of-range writes report absence and change nothing.
	Set(i int, v T) (T, bool)

	// Insert places v at i, shifting later elements right. Inserting
	// at Len appends. Fails when the list is at a fixed capacity or i
	// is past the end.
	Insert(i int, v T) error

	// Remove takes out the element at i, shifting later elements
	// left, and returns it. Out-of-range removal reports absence.
	Remove(i int) (T, bool)

	// Push appends v. Fails when the list is at a fixed capacity.
	Push(v T) error

	// Truncate shrinks the list to at most n elements, dropping the
	// removed ones. A negative or oversized n is a no-op.
	Truncate(n int)

	// Resize grows or shrinks the list to exactly n elements. Growth
	// fills new slots via fill, which must not be nil when growing.
	// Fails when n exceeds a fixed capacity.
	Resize(n int, fill func(i int) T) error

	// Each calls fn for elements in index order until fn returns
	// false.
	Each(fn func(i int, v T) bool)
}
