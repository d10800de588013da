package typed

import (
	"math"
	"testing"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/memtable/cell"
	"github.com/wippyai/memtable/errors"
)

type order struct {
	ID       int64           `table:"id"`
	Customer string          `table:"customer"`
	Total    decimal.Decimal `table:"total"`
	Placed   date.Date       `table:"placed"`
	Rush     bool
	internal string // not a column
}

func sampleOrder() order {
	return order{
		ID:       1001,
		Customer: "acme",
		Total:    decimal.MustParse("99.95"),
		Placed:   date.New(2024, 6, 1),
		Rush:     true,
	}
}

func TestNew_CompilesColumns(t *testing.T) {
	tbl, err := New[order]()
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "customer", "total", "placed", "Rush"}, tbl.Columns())

	idx, ok := tbl.ColumnIndex("total")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = tbl.ColumnIndex("internal")
	assert.False(t, ok, "unexported fields must not become columns")
}

func TestNew_RejectsNonStructs(t *testing.T) {
	_, err := New[int]()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidData))
}

type badField struct {
	Ch chan int
}

func TestNew_RejectsUnsupportedFields(t *testing.T) {
	_, err := New[badField]()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidData))
}

type skipped struct {
	Keep int
	Drop string `table:"-"`
}

func TestNew_SkipTag(t *testing.T) {
	tbl, err := New[skipped]()
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep"}, tbl.Columns())
}

func TestTable_RoundTrip(t *testing.T) {
	tbl, err := New[order]()
	require.NoError(t, err)

	want := sampleOrder()
	require.NoError(t, tbl.PushRow(want))
	require.Equal(t, 1, tbl.Len())

	got, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Customer, got.Customer)
	assert.Zero(t, want.Total.Cmp(got.Total))
	assert.Equal(t, want.Placed, got.Placed)
	assert.True(t, got.Rush)
	assert.Empty(t, got.internal)
}

func TestTable_InsertAndRemove(t *testing.T) {
	tbl, err := New[skipped]()
	require.NoError(t, err)

	require.NoError(t, tbl.PushRow(skipped{Keep: 1}))
	require.NoError(t, tbl.PushRow(skipped{Keep: 3}))
	require.NoError(t, tbl.InsertRow(1, skipped{Keep: 2}))

	rows, err := tbl.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []skipped{{Keep: 1}, {Keep: 2}, {Keep: 3}}, rows)

	removed, err := tbl.RemoveRow(1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.Keep)
	assert.Equal(t, 2, tbl.Len())

	_, err = tbl.Row(5)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindOutOfRange))
}

func TestTable_Column(t *testing.T) {
	tbl, err := New[order]()
	require.NoError(t, err)
	require.NoError(t, tbl.PushRow(sampleOrder()))

	col, ok := tbl.Column("customer")
	require.True(t, ok)
	require.Len(t, col, 1)
	s, _ := col[0].AsText()
	assert.Equal(t, "acme", s)

	_, ok = tbl.Column("nope")
	assert.False(t, ok)
}

type narrow struct {
	N int8    `table:"n"`
	F float32 `table:"f"`
}

func TestTable_OverflowRejectedOnRead(t *testing.T) {
	tbl, err := New[narrow]()
	require.NoError(t, err)
	require.NoError(t, tbl.PushRow(narrow{N: 1, F: 1}))

	// A value that fits int64 but not the int8 field must surface as
	// a typed error, never read back truncated.
	tbl.Grid().SetCell(0, 0, cell.Int(300))
	_, err = tbl.Row(0)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))

	tbl.Grid().SetCell(0, 0, cell.Int(7))
	tbl.Grid().SetCell(0, 1, cell.Float(math.MaxFloat64))
	_, err = tbl.Row(0)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))

	tbl.Grid().SetCell(0, 1, cell.Float(1.5))
	got, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, int8(7), got.N)
	assert.Equal(t, float32(1.5), got.F)
}

func TestTable_TypeMismatchOnRead(t *testing.T) {
	tbl, err := New[skipped]()
	require.NoError(t, err)
	require.NoError(t, tbl.PushRow(skipped{Keep: 1}))

	// Corrupt the backing grid behind the typed view.
	tbl.Grid().SetCell(0, 0, cell.Text("not an int"))

	_, err = tbl.Row(0)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
}
