package table

import "testing"

// The 2x3 grid used throughout:
//
//	"a" "b" "c"
//	"d" "e" "f"
func iterGrid(t *testing.T) *Grid[string] {
	t.Helper()
	g, err := FromRows([][]string{{"a", "b", "c"}, {"d", "e", "f"}})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCellIter_RowMajor(t *testing.T) {
	g := iterGrid(t)
	it := g.Cells()

	wantVals := []string{"a", "b", "c", "d", "e", "f"}
	wantPos := []Position{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}

	for i := range wantVals {
		if p := it.Pos(); p != wantPos[i] {
			t.Errorf("Pos before cell %d = %+v, want %+v", i, p, wantPos[i])
		}
		p, v, ok := it.NextWithPos()
		if !ok || v != wantVals[i] || p != wantPos[i] {
			t.Errorf("cell %d = %+v %q %v", i, p, v, ok)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("iterator should be exhausted")
	}
}

func TestCellIter_ColumnMajor(t *testing.T) {
	g := iterGrid(t)
	got := g.CellsByColumn().Collect()
	want := []string{"a", "d", "b", "e", "c", "f"}
	if len(got) != len(want) {
		t.Fatalf("collected %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCellIter_Reset(t *testing.T) {
	g := iterGrid(t)
	it := g.Cells()
	it.Next()
	it.Next()
	it.Reset()
	if v, ok := it.Next(); !ok || v != "a" {
		t.Errorf("after Reset, Next = %q, %v", v, ok)
	}
}

func TestCellIter_SingleAxes(t *testing.T) {
	g := iterGrid(t)

	row := g.Row(1).Collect()
	if len(row) != 3 || row[0] != "d" || row[2] != "f" {
		t.Errorf("Row(1) = %v", row)
	}

	it := g.Column(2)
	if p := it.Pos(); (p != Position{0, 2}) {
		t.Errorf("Column(2) start = %+v", p)
	}
	col := it.Collect()
	if len(col) != 2 || col[0] != "c" || col[1] != "f" {
		t.Errorf("Column(2) = %v", col)
	}

	if got := g.Row(9).Collect(); len(got) != 0 {
		t.Errorf("out-of-range row = %v", got)
	}
	if got := g.Column(9).Collect(); len(got) != 0 {
		t.Errorf("out-of-range column = %v", got)
	}
}

func TestCellIter_Empty(t *testing.T) {
	g := New[int]()
	if _, ok := g.Cells().Next(); ok {
		t.Error("empty table should yield nothing")
	}
	if _, ok := g.CellsByColumn().Next(); ok {
		t.Error("empty table should yield nothing")
	}
}
