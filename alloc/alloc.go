package alloc

import (
	"github.com/wippyai/memtable/errors"
)

// Dropper is implemented by elements that hold external resources and
// need explicit cleanup when a container releases them.
type Dropper interface {
	Drop()
}

// Slice builds a slice of exactly n elements by calling fn for each
// index in order. If fn fails at index i, the elements built so far are
// dropped in reverse order and a construction failure carrying i and
// the cause is returned. A partially built slice is never observable.
func Slice[T any](n int, fn func(i int) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, errors.InvalidData("negative slice length")
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := fn(i)
		if err != nil {
			DropSlice(out)
			return nil, errors.ConstructionFailed(i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Grid builds a rows x cols grid row by row via Slice. On a failing
// row, that row's prefix is dropped first, then every previously
// completed row. The returned error carries the index of the failing
// row.
func Grid[T any](rows, cols int, fn func(r, c int) (T, error)) ([][]T, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.InvalidData("negative grid dimension")
	}

	out := make([][]T, 0, rows)
	for r := 0; r < rows; r++ {
		row, err := Slice(cols, func(c int) (T, error) {
			return fn(r, c)
		})
		if err != nil {
			for i := len(out) - 1; i >= 0; i-- {
				DropSlice(out[i])
			}
			return nil, errors.ConstructionFailed(r, err)
		}
		out = append(out, row)
	}
	return out, nil
}

// DropSlice drops the elements of s in reverse order.
func DropSlice[T any](s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		Drop(s[i])
	}
}

// DropAll drops every element of a grid, last row first.
func DropAll[T any](g [][]T) {
	for i := len(g) - 1; i >= 0; i-- {
		DropSlice(g[i])
	}
}

// Drop releases v if it implements Dropper. Safe on any value.
func Drop(v any) {
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
}
