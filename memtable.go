package memtable

import (
	"github.com/wippyai/memtable/alloc"
	"github.com/wippyai/memtable/list"
	"github.com/wippyai/memtable/table"
)

// Position is a zero-based cell coordinate.
type Position = table.Position

// Capacity describes one table axis. Max < 0 means unbounded.
type Capacity = list.Capacity

// Table is the contract shared by every capacity variant.
type Table[T any] interface {
	table.Table[T]
}

// Dropper is implemented by cell values that need explicit cleanup
// when a container releases them.
type Dropper = alloc.Dropper

// New creates a table with both axes unbounded.
func New[T any]() *table.Grid[T] {
	return table.New[T]()
}

// NewFixed creates a table whose axes are fixed at rows x cols.
func NewFixed[T any](rows, cols int) *table.Grid[T] {
	return table.NewFixed[T](rows, cols)
}

// NewFixedRows creates a table with a fixed row axis and an
// unbounded column axis.
func NewFixedRows[T any](rows int) *table.Grid[T] {
	return table.NewFixedRows[T](rows)
}

// NewFixedCols creates a table with an unbounded row axis and a
// fixed column axis.
func NewFixedCols[T any](cols int) *table.Grid[T] {
	return table.NewFixedCols[T](cols)
}

// FromRows creates an unbounded table from a grid literal, rejecting
// ragged input.
func FromRows[T any](rows [][]T) (*table.Grid[T], error) {
	return table.FromRows(rows)
}
