package table

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/wippyai/memtable/errors"
)

func TestGrid_JSONRoundTrip(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`"rows":2`, `"cols":3`, `"cells":[1,2,3,4,5,6]`} {
		if !strings.Contains(string(data), s) {
			t.Errorf("payload %s missing %s", data, s)
		}
	}

	var back Grid[int]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Rows() != 2 || back.Cols() != 3 {
		t.Fatalf("shape = %dx%d", back.Rows(), back.Cols())
	}
	if v, _ := back.Cell(1, 1); v != 5 {
		t.Errorf("Cell(1,1) = %d", v)
	}
}

func TestGrid_JSONIntoFixed(t *testing.T) {
	src := mustGrid(t, [][]int{{1, 2}, {3, 4}})
	data, err := json.Marshal(src)
	if err != nil {
		t.Fatal(err)
	}

	ok := NewFixed[int](2, 2)
	if err := json.Unmarshal(data, ok); err != nil {
		t.Fatal(err)
	}
	if v, _ := ok.Cell(1, 0); v != 3 {
		t.Errorf("Cell(1,0) = %d", v)
	}

	small := NewFixed[int](1, 2)
	err = json.Unmarshal(data, small)
	if !errors.IsKind(err, errors.KindCapacityExceeded) {
		t.Fatalf("payload past row limit: %v", err)
	}
	if small.Rows() != 0 {
		t.Error("failed unmarshal changed the table")
	}
}

func TestGrid_JSONBadCellCount(t *testing.T) {
	var g Grid[int]
	err := json.Unmarshal([]byte(`{"rows":2,"cols":2,"cells":[1,2,3]}`), &g)
	if !errors.IsKind(err, errors.KindSizeMismatch) {
		t.Fatalf("error: %v", err)
	}
	if g.Rows() != 0 {
		t.Error("failed unmarshal changed the table")
	}
}

func TestGrid_JSONReplacesContents(t *testing.T) {
	g := mustGrid(t, [][]int{{9, 9, 9}})
	if err := json.Unmarshal([]byte(`{"rows":1,"cols":1,"cells":[7]}`), g); err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("shape = %dx%d", g.Rows(), g.Cols())
	}
	if v, _ := g.Cell(0, 0); v != 7 {
		t.Errorf("Cell(0,0) = %d", v)
	}
}
