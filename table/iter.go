package table

type iterMode int

const (
	iterRowMajor iterMode = iota
	iterColumnMajor
	iterRow
	iterColumn
)

// CellIter is a restartable positional iterator over table cells. It
// reads the table live; mutating the table mid-iteration is the
// caller's responsibility.
type CellIter[T any] struct {
	g    *Grid[T]
	mode iterMode
	axis int // the fixed row or column for single-axis modes
	pos  Position
}

func newCellIter[T any](g *Grid[T], mode iterMode, axis int) *CellIter[T] {
	it := &CellIter[T]{g: g, mode: mode, axis: axis}
	it.Reset()
	return it
}

// Reset rewinds the iterator to its first cell.
func (it *CellIter[T]) Reset() {
	switch it.mode {
	case iterRow:
		it.pos = Position{Row: it.axis, Col: 0}
	case iterColumn:
		it.pos = Position{Row: 0, Col: it.axis}
	default:
		it.pos = Position{}
	}
}

// Pos returns the position of the cell the next call to Next would
// yield. After exhaustion it points one step past the last cell.
func (it *CellIter[T]) Pos() Position {
	return it.pos
}

// Next yields the next cell, or absence when the traversal is done.
func (it *CellIter[T]) Next() (T, bool) {
	_, v, ok := it.NextWithPos()
	return v, ok
}

// NextWithPos yields the next cell paired with its position.
func (it *CellIter[T]) NextWithPos() (Position, T, bool) {
	v, ok := it.g.Cell(it.pos.Row, it.pos.Col)
	if !ok {
		var zero T
		return it.pos, zero, false
	}
	p := it.pos
	it.advance()
	return p, v, true
}

func (it *CellIter[T]) advance() {
	switch it.mode {
	case iterRow:
		it.pos.Col++
	case iterColumn:
		it.pos.Row++
	case iterRowMajor:
		it.pos.Col++
		if it.pos.Col >= it.g.Cols() {
			it.pos.Col = 0
			it.pos.Row++
		}
	case iterColumnMajor:
		it.pos.Row++
		if it.pos.Row >= it.g.Rows() {
			it.pos.Row = 0
			it.pos.Col++
		}
	}
}

// Collect drains the remaining cells into a slice.
func (it *CellIter[T]) Collect() []T {
	var out []T
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
