package typed

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"

	"github.com/wippyai/memtable/cell"
	"github.com/wippyai/memtable/errors"
	"github.com/wippyai/memtable/table"
)

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(date.Date(0))
	cellType    = reflect.TypeOf(cell.Value{})
)

// column binds one struct field to one table column.
type column struct {
	name  string
	field int
}

// Table maps rows of a struct type onto a cell table. The column set
// is compiled from the struct shape once at construction: exported
// fields in declaration order, named by the "table" tag when present.
// Fields tagged "-" are skipped.
type Table[S any] struct {
	grid *table.Grid[cell.Value]
	cols []column
}

// New compiles the struct shape of S and returns an empty typed
// table over a dynamic grid.
func New[S any]() (*Table[S], error) {
	var probe S
	rt := reflect.TypeOf(probe)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, errors.InvalidData("row type must be a struct")
	}

	var cols []column
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("table"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		if !supported(f.Type) {
			return nil, errors.InvalidData(
				fmt.Sprintf("field %s: unsupported column type %s", f.Name, f.Type))
		}
		cols = append(cols, column{name: name, field: i})
	}
	if len(cols) == 0 {
		return nil, errors.InvalidData("row type has no usable fields")
	}

	return &Table[S]{grid: table.New[cell.Value](), cols: cols}, nil
}

func supported(t reflect.Type) bool {
	switch t {
	case decimalType, dateType, cellType:
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String, reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// Columns returns the column labels in declaration order.
func (t *Table[S]) Columns() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}
	return out
}

// ColumnIndex returns the position of the named column.
func (t *Table[S]) ColumnIndex(name string) (int, bool) {
	for i, c := range t.cols {
		if c.name == name {
			return i, true
		}
	}
	return 0, false
}

// Len returns the row count.
func (t *Table[S]) Len() int {
	return t.grid.Rows()
}

// Grid exposes the backing cell table for CSV or JSON passthrough.
func (t *Table[S]) Grid() *table.Grid[cell.Value] {
	return t.grid
}

// PushRow appends one struct as a row.
func (t *Table[S]) PushRow(s S) error {
	return t.InsertRow(t.grid.Rows(), s)
}

// InsertRow places one struct at row i.
func (t *Table[S]) InsertRow(i int, s S) error {
	rv := reflect.ValueOf(s)
	vals := make([]cell.Value, len(t.cols))
	for j, c := range t.cols {
		vals[j] = toCell(rv.Field(c.field))
	}
	return t.grid.InsertRow(i, vals)
}

// Row reassembles row i into a struct. Reading a cell whose variant
// disagrees with the field type fails with a typed error.
func (t *Table[S]) Row(i int) (S, error) {
	var out S
	if i < 0 || i >= t.grid.Rows() {
		return out, errors.OutOfRange(errors.AxisRow, i, t.grid.Rows())
	}
	rv := reflect.ValueOf(&out).Elem()
	for j, c := range t.cols {
		v, ok := t.grid.Cell(i, j)
		if !ok {
			return out, errors.MissingCell(i, c.name)
		}
		if err := fromCell(v, rv.Field(c.field), i, j); err != nil {
			var zero S
			return zero, err
		}
	}
	return out, nil
}

// Rows reassembles every row.
func (t *Table[S]) Rows() ([]S, error) {
	out := make([]S, 0, t.grid.Rows())
	for i := 0; i < t.grid.Rows(); i++ {
		s, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// RemoveRow takes out row i and returns it as a struct.
func (t *Table[S]) RemoveRow(i int) (S, error) {
	s, err := t.Row(i)
	if err != nil {
		return s, err
	}
	t.grid.RemoveRow(i)
	return s, nil
}

// Column returns the named column's cells top to bottom.
func (t *Table[S]) Column(name string) ([]cell.Value, bool) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, false
	}
	return t.grid.Column(idx).Collect(), true
}

func toCell(v reflect.Value) cell.Value {
	switch v.Type() {
	case decimalType:
		return cell.Dec(v.Interface().(decimal.Decimal))
	case dateType:
		return cell.Date(v.Interface().(date.Date))
	case cellType:
		return v.Interface().(cell.Value)
	}
	switch v.Kind() {
	case reflect.Bool:
		return cell.Bool(v.Bool())
	case reflect.String:
		return cell.Text(v.String())
	case reflect.Float32, reflect.Float64:
		return cell.Float(v.Float())
	default:
		return cell.Int(v.Int())
	}
}

func fromCell(v cell.Value, field reflect.Value, row, col int) error {
	mismatch := func(want string) error {
		return errors.TypeMismatch(row, col, want, string(v.Kind()))
	}
	switch field.Type() {
	case decimalType:
		d, ok := v.AsDecimal()
		if !ok {
			return mismatch("decimal")
		}
		field.Set(reflect.ValueOf(d))
		return nil
	case dateType:
		d, ok := v.AsDate()
		if !ok {
			return mismatch("date")
		}
		field.Set(reflect.ValueOf(d))
		return nil
	case cellType:
		field.Set(reflect.ValueOf(v))
		return nil
	}
	switch field.Kind() {
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return mismatch("bool")
		}
		field.SetBool(b)
	case reflect.String:
		s, ok := v.AsText()
		if !ok {
			return mismatch("text")
		}
		field.SetString(s)
	case reflect.Float32, reflect.Float64:
		f, ok := v.AsFloat()
		if !ok {
			return mismatch("float")
		}
		if field.OverflowFloat(f) {
			return errors.TypeMismatch(row, col, field.Type().String(),
				"float "+strconv.FormatFloat(f, 'g', -1, 64))
		}
		field.SetFloat(f)
	default:
		i, ok := v.AsInt()
		if !ok {
			return mismatch("int")
		}
		if field.OverflowInt(i) {
			return errors.TypeMismatch(row, col, field.Type().String(),
				"int "+strconv.FormatInt(i, 10))
		}
		field.SetInt(i)
	}
	return nil
}
