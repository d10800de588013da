package table

import (
	json "github.com/goccy/go-json"

	"github.com/wippyai/memtable/errors"
	"github.com/wippyai/memtable/list"
)

// envelope is the stable wire shape: dimensions plus the cells laid
// out row-major. The axis strategies are a property of the receiving
// table, not of the payload.
type envelope[T any] struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Cells []T `json:"cells"`
}

// MarshalJSON encodes the table as {rows, cols, cells} with cells in
// row-major order.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	env := envelope[T]{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: make([]T, 0, g.Len()),
	}
	it := g.Cells()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		env.Cells = append(env.Cells, v)
	}
	return json.Marshal(env)
}

// UnmarshalJSON replaces the table's contents with the payload. The
// cell count must agree with the declared dimensions, and the
// dimensions must fit the table's axis limits; on any error the table
// is left unchanged.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.Wrap(errors.KindInvalidData, err, "table payload")
	}
	if env.Rows < 0 || env.Cols < 0 {
		return errors.InvalidData("negative table dimension")
	}
	if len(env.Cells) != env.Rows*env.Cols {
		return errors.SizeMismatch(errors.AxisNone, env.Rows*env.Cols, len(env.Cells))
	}
	g.ensure()
	if !g.rowCap.Fits(env.Rows) {
		return errors.CapacityExceeded(errors.AxisRow, g.rowCap.Max)
	}
	if !g.colCap.Fits(env.Cols) {
		return errors.CapacityExceeded(errors.AxisColumn, g.colCap.Max)
	}

	// Stage the replacement rows through the construction protocol
	// before touching the live table.
	staged, err := list.NewFixedWith(env.Rows, func(r int) (list.List[T], error) {
		row := g.newRowList()
		for c := 0; c < env.Cols; c++ {
			if err := row.Push(env.Cells[r*env.Cols+c]); err != nil {
				return nil, err
			}
		}
		return row, nil
	})
	if err != nil {
		return err
	}

	g.rows.Truncate(0)
	staged.Each(func(_ int, row list.List[T]) bool {
		g.rows.Push(row)
		return true
	})
	g.cols = env.Cols
	return nil
}
