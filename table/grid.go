package table

import (
	"github.com/wippyai/memtable/alloc"
	"github.com/wippyai/memtable/errors"
	"github.com/wippyai/memtable/list"
)

// Grid is the single Table implementation. It composes a row-axis
// list of column-axis lists; the capacity descriptor of each axis
// decides whether that axis is growable, so the four variants differ
// only in construction.
type Grid[T any] struct {
	rows   list.List[list.List[T]]
	rowCap list.Capacity
	colCap list.Capacity
	cols   int
}

// New creates a table with both axes unbounded.
func New[T any]() *Grid[T] {
	return &Grid[T]{
		rows:   list.NewDynamic[list.List[T]](),
		rowCap: list.Unbounded(0),
		colCap: list.Unbounded(0),
	}
}

// NewFixed creates a table whose axes are fixed at rows x cols. The
// table starts empty; the limits bound how far it can grow.
func NewFixed[T any](rows, cols int) *Grid[T] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid[T]{
		rows:   list.NewFixed[list.List[T]](rows),
		rowCap: list.Bounded(rows),
		colCap: list.Bounded(cols),
	}
}

// NewFixedRows creates a table with a fixed row axis and an unbounded
// column axis.
func NewFixedRows[T any](rows int) *Grid[T] {
	if rows < 0 {
		rows = 0
	}
	return &Grid[T]{
		rows:   list.NewFixed[list.List[T]](rows),
		rowCap: list.Bounded(rows),
		colCap: list.Unbounded(0),
	}
}

// NewFixedCols creates a table with an unbounded row axis and a fixed
// column axis.
func NewFixedCols[T any](cols int) *Grid[T] {
	if cols < 0 {
		cols = 0
	}
	return &Grid[T]{
		rows:   list.NewDynamic[list.List[T]](),
		rowCap: list.Unbounded(0),
		colCap: list.Bounded(cols),
	}
}

// FromRows creates an unbounded table from a grid literal. Every row
// must have the same length; a ragged literal is rejected without
// building anything.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	g := New[T]()
	if len(rows) == 0 {
		return g, nil
	}
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.RaggedInput(r, width, len(row))
		}
	}
	for _, row := range rows {
		if err := g.PushRow(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildFixed creates a fully populated fixed table, constructing each
// cell through the fallible protocol. On failure the built prefix is
// dropped and nothing is returned.
func BuildFixed[T any](rows, cols int, fn func(r, c int) (T, error)) (*Grid[T], error) {
	cells, err := alloc.Grid(rows, cols, fn)
	if err != nil {
		return nil, err
	}
	g := NewFixed[T](rows, cols)
	for _, row := range cells {
		// Cannot fail: the grid was sized for exactly this shape.
		if err := g.PushRow(row); err != nil {
			alloc.DropAll(cells)
			return nil, err
		}
	}
	return g, nil
}

// ensure makes the zero value usable as a fully dynamic table.
func (g *Grid[T]) ensure() {
	if g.rows == nil {
		g.rows = list.NewDynamic[list.List[T]]()
		g.rowCap = list.Unbounded(0)
		g.colCap = list.Unbounded(0)
	}
}

// newRowList allocates a backing list for one row per the column
// axis strategy.
func (g *Grid[T]) newRowList() list.List[T] {
	if g.colCap.IsBounded() {
		return list.NewFixed[T](g.colCap.Max)
	}
	return list.NewDynamic[T]()
}

// Rows returns the current row count.
func (g *Grid[T]) Rows() int {
	if g.rows == nil {
		return 0
	}
	return g.rows.Len()
}

// Cols returns the current column count.
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Len returns the total cell count.
func (g *Grid[T]) Len() int {
	return g.Rows() * g.cols
}

// IsEmpty reports whether the table holds no cells.
func (g *Grid[T]) IsEmpty() bool {
	return g.Len() == 0
}

// RowCapacity returns the row axis descriptor.
func (g *Grid[T]) RowCapacity() list.Capacity {
	g.ensure()
	return g.rowCap
}

// ColCapacity returns the column axis descriptor.
func (g *Grid[T]) ColCapacity() list.Capacity {
	g.ensure()
	return g.colCap
}

// Cell returns the value at (row, col), or absence when out of range.
func (g *Grid[T]) Cell(row, col int) (T, bool) {
	if g.rows == nil {
		var zero T
		return zero, false
	}
	r, ok := g.rows.Get(row)
	if !ok {
		var zero T
		return zero, false
	}
	return r.Get(col)
}

// MutCell returns a pointer to the cell at (row, col), or nil when
// out of range.
func (g *Grid[T]) MutCell(row, col int) *T {
	if g.rows == nil {
		return nil
	}
	r, ok := g.rows.Get(row)
	if !ok {
		return nil
	}
	return r.Ref(col)
}

// SetCell replaces the cell at (row, col) and returns the previous
// value.
func (g *Grid[T]) SetCell(row, col int, v T) (T, bool) {
	if g.rows == nil {
		var zero T
		return zero, false
	}
	r, ok := g.rows.Get(row)
	if !ok {
		var zero T
		return zero, false
	}
	return r.Set(col, v)
}

// PushRow appends a row of cells.
func (g *Grid[T]) PushRow(vals []T) error {
	return g.InsertRow(g.Rows(), vals)
}

// InsertRow places a row at r, shifting later rows down. The values
// must match the column extent exactly; on a non-empty table the
// extent is the current width, and on an empty one the first row
// defines it within the column limit.
func (g *Grid[T]) InsertRow(r int, vals []T) error {
	g.ensure()
	if r < 0 || r > g.rows.Len() {
		return errors.OutOfRange(errors.AxisRow, r, g.rows.Len())
	}
	if g.rowCap.IsBounded() && g.rows.Len() >= g.rowCap.Max {
		return errors.CapacityExceeded(errors.AxisRow, g.rowCap.Max)
	}
	if g.rows.Len() > 0 {
		if len(vals) != g.cols {
			return errors.SizeMismatch(errors.AxisColumn, g.cols, len(vals))
		}
	} else if !g.colCap.Fits(len(vals)) {
		return errors.CapacityExceeded(errors.AxisColumn, g.colCap.Max)
	}

	row := g.newRowList()
	for _, v := range vals {
		if err := row.Push(v); err != nil {
			return err
		}
	}
	if err := g.rows.Insert(r, row); err != nil {
		return err
	}
	g.cols = len(vals)
	return nil
}

// PushColumn appends a column of cells.
func (g *Grid[T]) PushColumn(vals []T) error {
	return g.InsertColumn(g.cols, vals)
}

// InsertColumn places a column at c, shifting later columns right.
// The values must match the row extent; on an empty table the first
// column defines it, creating one row per value.
func (g *Grid[T]) InsertColumn(c int, vals []T) error {
	g.ensure()
	if c < 0 || c > g.cols {
		return errors.OutOfRange(errors.AxisColumn, c, g.cols)
	}
	if g.colCap.IsBounded() && g.cols >= g.colCap.Max {
		return errors.CapacityExceeded(errors.AxisColumn, g.colCap.Max)
	}

	if g.rows.Len() == 0 {
		if len(vals) == 0 {
			return nil
		}
		// First column defines the row extent.
		if !g.rowCap.Fits(len(vals)) {
			return errors.CapacityExceeded(errors.AxisRow, g.rowCap.Max)
		}
		for _, v := range vals {
			row := g.newRowList()
			if err := row.Push(v); err != nil {
				return err
			}
			if err := g.rows.Push(row); err != nil {
				return err
			}
		}
		g.cols = 1
		return nil
	}

	if len(vals) != g.rows.Len() {
		return errors.SizeMismatch(errors.AxisRow, g.rows.Len(), len(vals))
	}

	// Validated above, so the per-row inserts cannot fail partway.
	for i := 0; i < g.rows.Len(); i++ {
		row, _ := g.rows.Get(i)
		if err := row.Insert(c, vals[i]); err != nil {
			return err
		}
	}
	g.cols++
	return nil
}

// RemoveRow takes out row r and returns its cells.
func (g *Grid[T]) RemoveRow(r int) ([]T, bool) {
	if g.rows == nil {
		return nil, false
	}
	row, ok := g.rows.Remove(r)
	if !ok {
		return nil, false
	}
	out := make([]T, 0, row.Len())
	row.Each(func(i int, v T) bool {
		out = append(out, v)
		return true
	})
	if g.rows.Len() == 0 {
		g.cols = 0
	}
	return out, true
}

// RemoveColumn takes out column c and returns its cells.
func (g *Grid[T]) RemoveColumn(c int) ([]T, bool) {
	if g.rows == nil || c < 0 || c >= g.cols {
		return nil, false
	}
	out := make([]T, 0, g.rows.Len())
	for i := 0; i < g.rows.Len(); i++ {
		row, _ := g.rows.Get(i)
		v, _ := row.Remove(c)
		out = append(out, v)
	}
	g.cols--
	if g.cols == 0 {
		g.rows.Truncate(0)
	}
	return out, true
}

// SetPreferredRows resizes the row extent to n. A fixed axis clamps n
// into its limit; growth fills with zero-value rows of the current
// width, shrinking drops the removed rows.
func (g *Grid[T]) SetPreferredRows(n int) {
	g.ensure()
	n = g.rowCap.Clamp(n)
	g.rowCap.Preferred = n
	if d, ok := g.rows.(*list.Dynamic[list.List[T]]); ok {
		d.SetPreferred(n)
	}
	if n <= g.rows.Len() {
		g.rows.Truncate(n)
		if g.rows.Len() == 0 {
			g.cols = 0
		}
		return
	}
	// Cannot fail: n was clamped to the axis limit.
	g.rows.Resize(n, func(i int) list.List[T] {
		row := g.newRowList()
		var zero T
		for c := 0; c < g.cols; c++ {
			row.Push(zero)
		}
		return row
	})
}

// SetPreferredCols resizes the column extent to n the same way,
// filling new cells with zero values. On a table with no rows only
// the hint changes.
func (g *Grid[T]) SetPreferredCols(n int) {
	g.ensure()
	n = g.colCap.Clamp(n)
	g.colCap.Preferred = n
	if g.rows.Len() == 0 {
		return
	}
	if n == 0 {
		g.rows.Truncate(0)
		g.cols = 0
		return
	}
	for i := 0; i < g.rows.Len(); i++ {
		row, _ := g.rows.Get(i)
		if d, ok := row.(*list.Dynamic[T]); ok {
			d.SetPreferred(n)
		}
		var zero T
		// Cannot fail: n was clamped to the axis limit.
		row.Resize(n, func(int) T { return zero })
	}
	g.cols = n
}

// Row iterates the cells of row r left to right.
func (g *Grid[T]) Row(r int) *CellIter[T] {
	return newCellIter(g, iterRow, r)
}

// Column iterates the cells of column c top to bottom.
func (g *Grid[T]) Column(c int) *CellIter[T] {
	return newCellIter(g, iterColumn, c)
}

// Cells iterates every cell row-major.
func (g *Grid[T]) Cells() *CellIter[T] {
	return newCellIter(g, iterRowMajor, 0)
}

// CellsByColumn iterates every cell column-major.
func (g *Grid[T]) CellsByColumn() *CellIter[T] {
	return newCellIter(g, iterColumnMajor, 0)
}

// Clone returns an independent copy with the same capacities and cell
// values. Cell values are copied shallowly.
func (g *Grid[T]) Clone() Table[T] {
	out := &Grid[T]{
		rowCap: g.rowCap,
		colCap: g.colCap,
		cols:   g.cols,
	}
	if g.rowCap.IsBounded() {
		out.rows = list.NewFixed[list.List[T]](g.rowCap.Max)
	} else {
		out.rows = list.NewDynamic[list.List[T]]()
	}
	if g.rows == nil {
		return out
	}
	g.rows.Each(func(_ int, row list.List[T]) bool {
		dup := out.newRowList()
		row.Each(func(_ int, v T) bool {
			dup.Push(v)
			return true
		})
		out.rows.Push(dup)
		return true
	})
	return out
}
