package table

import (
	"github.com/wippyai/memtable/list"
)

// Table is the contract shared by every capacity variant. Accessors
// report absence for out-of-range coordinates and never fail;
// mutations that would violate a capacity or the rectangular shape
// return a typed error and leave the table unchanged.
type Table[T any] interface {
	// Rows returns the current row count.
	Rows() int

	// Cols returns the current column count.
	Cols() int

	// Len returns the total cell count, Rows * Cols.
	Len() int

	// IsEmpty reports whether the table holds no cells.
	IsEmpty() bool

	// Cell returns the value at (row, col), or absence when either
	// coordinate is out of range.
	Cell(row, col int) (T, bool)

	// MutCell returns a pointer to the cell at (row, col) for
	// in-place mutation, or nil when out of range.
	MutCell(row, col int) *T

	// SetCell replaces the cell at (row, col) and returns the
	// previous value. Out-of-range writes report absence and change
	// nothing.
	SetCell(row, col int, v T) (T, bool)

	// Row iterates the cells of row r left to right.
	Row(r int) *CellIter[T]

	// Column iterates the cells of column c top to bottom.
	Column(c int) *CellIter[T]

	// PushRow appends a row. The supplied values must match the
	// column extent, and the row axis must have room.
	PushRow(vals []T) error

	// PushColumn appends a column. The supplied values must match
	// the row extent, and the column axis must have room.
	PushColumn(vals []T) error

	// InsertRow places a row at r, shifting later rows down.
	// Inserting at Rows appends.
	InsertRow(r int, vals []T) error

	// InsertColumn places a column at c, shifting later columns
	// right. Inserting at Cols appends.
	InsertColumn(c int, vals []T) error

	// RemoveRow takes out row r and returns its cells. Out-of-range
	// removal reports absence and changes nothing.
	RemoveRow(r int) ([]T, bool)

	// RemoveColumn takes out column c and returns its cells.
	RemoveColumn(c int) ([]T, bool)

	// SetPreferredRows resizes the row extent to n where the axis
	// allows it: a dynamic axis grows with zero-value rows or shrinks
	// dropping the removed ones, a fixed axis clamps n into its
	// limit. Never fails.
	SetPreferredRows(n int)

	// SetPreferredCols resizes the column extent the same way.
	SetPreferredCols(n int)

	// RowCapacity returns the row axis descriptor.
	RowCapacity() list.Capacity

	// ColCapacity returns the column axis descriptor.
	ColCapacity() list.Capacity

	// Cells iterates every cell row-major.
	Cells() *CellIter[T]

	// CellsByColumn iterates every cell column-major.
	CellsByColumn() *CellIter[T]

	// Clone returns an independent copy with the same capacities and
	// cell values.
	Clone() Table[T]
}
