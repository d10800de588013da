package alloc

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/memtable/errors"
)

// tracked records its own construction and drop so tests can verify
// the rollback protocol.
type tracked struct {
	id    int
	log   *[]string
	drops *int
}

func (t *tracked) Drop() {
	*t.drops++
	*t.log = append(*t.log, "drop")
}

func TestSlice_BuildsInOrder(t *testing.T) {
	var order []int
	s, err := Slice(4, func(i int) (int, error) {
		order = append(order, i)
		return i * 10, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	for i, v := range s {
		if v != i*10 {
			t.Errorf("s[%d] = %d, want %d", i, v, i*10)
		}
	}
	for i, got := range order {
		if got != i {
			t.Errorf("construction order[%d] = %d", i, got)
		}
	}
}

func TestSlice_Empty(t *testing.T) {
	s, err := Slice(0, func(i int) (int, error) {
		t.Fatal("factory should not be called")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("len = %d, want 0", len(s))
	}
}

func TestSlice_FailureDropsPrefix(t *testing.T) {
	boom := stderrors.New("boom")

	tests := []struct {
		name      string
		failAt    int
		wantDrops int
	}{
		{"fail at first", 0, 0},
		{"fail in middle", 2, 2},
		{"fail at last", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			drops := 0
			s, err := Slice(5, func(i int) (*tracked, error) {
				if i == tt.failAt {
					return nil, boom
				}
				return &tracked{id: i, log: &log, drops: &drops}, nil
			})
			if s != nil {
				t.Error("slice should be nil on failure")
			}
			if !errors.IsKind(err, errors.KindConstructionFailed) {
				t.Fatalf("error kind = %v", err)
			}
			if !stderrors.Is(err, boom) {
				t.Error("cause should be preserved")
			}
			var ce *errors.Error
			if stderrors.As(err, &ce); ce.Index != tt.failAt {
				t.Errorf("index = %d, want %d", ce.Index, tt.failAt)
			}
			if drops != tt.wantDrops {
				t.Errorf("drops = %d, want %d", drops, tt.wantDrops)
			}
		})
	}
}

func TestGrid_FailureDropsCompletedRows(t *testing.T) {
	boom := stderrors.New("boom")
	var log []string
	drops := 0

	// Fail at (1,1): row 0 is complete (3 cells), row 1 has 1 built cell.
	g, err := Grid(3, 3, func(r, c int) (*tracked, error) {
		if r == 1 && c == 1 {
			return nil, boom
		}
		return &tracked{id: r*3 + c, log: &log, drops: &drops}, nil
	})
	if g != nil {
		t.Error("grid should be nil on failure")
	}
	if !errors.IsKind(err, errors.KindConstructionFailed) {
		t.Fatalf("error kind = %v", err)
	}
	if drops != 4 {
		t.Errorf("drops = %d, want 4", drops)
	}
}

func TestGrid_Success(t *testing.T) {
	g, err := Grid(2, 3, func(r, c int) (int, error) {
		return r*3 + c, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g) != 2 || len(g[0]) != 3 {
		t.Fatalf("shape = %dx%d", len(g), len(g[0]))
	}
	if g[1][2] != 5 {
		t.Errorf("g[1][2] = %d, want 5", g[1][2])
	}
}

func TestDropSlice_ReverseOrder(t *testing.T) {
	var order []int
	mk := func(id int) dropFn { return func() { order = append(order, id) } }
	DropSlice([]dropFn{mk(0), mk(1), mk(2)})
	if len(order) != 3 || order[0] != 2 || order[2] != 0 {
		t.Errorf("drop order = %v, want [2 1 0]", order)
	}
}

func TestDrop_NonDropper(t *testing.T) {
	// Must not panic on values without cleanup.
	Drop(42)
	Drop("text")
	Drop(nil)
}

type dropFn func()

func (f dropFn) Drop() { f() }
