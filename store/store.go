package store

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wippyai/memtable/errors"
	"github.com/wippyai/memtable/table"
)

const (
	idFile       = "id"
	snapshotFile = "snapshot.json"
	logFile      = "ops.log"

	// maxErrors bounds the write-failure stash. Older failures are
	// dropped once the buffer is full.
	maxErrors = 10
)

// Table wraps an in-memory table with a directory-backed snapshot
// plus append-only operation log. Reads come from memory; mutations
// write through. Log append failures do not fail the mutation, they
// are stashed for TakeErrors.
//
// A Table expects a single owner. Only the error stash is guarded
// for concurrent access.
type Table[T any] struct {
	inner table.Table[T]
	id    uuid.UUID
	dir   string
	log   *os.File

	errMu  sync.Mutex
	errs   []error
	closed bool
}

// record is one logged mutation. Vals carries the row or column
// payload; set_cell uses Index/Col plus a single value.
type record[T any] struct {
	Op    string `json:"op"`
	Index int    `json:"index"`
	Col   int    `json:"col,omitempty"`
	Vals  []T    `json:"vals,omitempty"`
}

// snapshot is the persisted full state. The checksum covers the
// serialized cells so a torn write is detected on load.
type snapshot[T any] struct {
	ID       string `json:"id"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Cells    []T    `json:"cells"`
	Checksum uint64 `json:"checksum"`
}

// Open loads or creates a durable table in dir, wrapping inner. An
// existing snapshot and log are replayed into inner, which must be
// empty and shaped to accept them.
func Open[T any](dir string, inner table.Table[T]) (*Table[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Storage("create store directory", err)
	}

	t := &Table[T]{inner: inner, dir: dir}
	if err := t.loadID(); err != nil {
		return nil, err
	}
	if err := t.loadSnapshot(); err != nil {
		return nil, err
	}
	if err := t.replayLog(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Storage("open operation log", err)
	}
	t.log = f

	Logger().Debug("store opened",
		zap.String("id", t.id.String()),
		zap.String("dir", dir),
		zap.Int("rows", inner.Rows()),
		zap.Int("cols", inner.Cols()))
	return t, nil
}

func (t *Table[T]) loadID() error {
	path := filepath.Join(t.dir, idFile)
	data, err := os.ReadFile(path)
	if err == nil {
		id, perr := uuid.Parse(string(data))
		if perr != nil {
			return errors.Wrap(errors.KindInvalidData, perr, "table id")
		}
		t.id = id
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Storage("read table id", err)
	}
	t.id = uuid.New()
	if err := os.WriteFile(path, []byte(t.id.String()), 0o644); err != nil {
		return errors.Storage("write table id", err)
	}
	return nil
}

func (t *Table[T]) loadSnapshot() error {
	data, err := os.ReadFile(filepath.Join(t.dir, snapshotFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Storage("read snapshot", err)
	}

	var snap snapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return errors.CorruptSnapshot("snapshot payload", err)
	}
	cells, err := json.Marshal(snap.Cells)
	if err != nil {
		return errors.CorruptSnapshot("snapshot cells", err)
	}
	if sum := xxhash.Sum64(cells); sum != snap.Checksum {
		return errors.CorruptSnapshot("checksum mismatch", nil)
	}
	if len(snap.Cells) != snap.Rows*snap.Cols {
		return errors.CorruptSnapshot("cell count disagrees with dimensions", nil)
	}

	for r := 0; r < snap.Rows; r++ {
		row := snap.Cells[r*snap.Cols : (r+1)*snap.Cols]
		if err := t.inner.PushRow(row); err != nil {
			return errors.Wrap(errors.KindCorruptSnapshot, err, "snapshot does not fit table")
		}
	}
	return nil
}

func (t *Table[T]) replayLog() error {
	f, err := os.Open(filepath.Join(t.dir, logFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Storage("open operation log", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for {
		var header [12]byte
		if _, err := io.ReadFull(br, header[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			// A torn tail frame is expected after a crash. Stop
			// replay at the last complete record.
			Logger().Warn("truncated log frame", zap.Error(err))
			return nil
		}
		size := binary.BigEndian.Uint32(header[0:4])
		sum := binary.BigEndian.Uint64(header[4:12])

		payload := make([]byte, size)
		if _, err := io.ReadFull(br, payload); err != nil {
			Logger().Warn("truncated log frame", zap.Error(err))
			return nil
		}
		if xxhash.Sum64(payload) != sum {
			return errors.InvalidData("log frame checksum mismatch")
		}

		var rec record[T]
		if err := json.Unmarshal(payload, &rec); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "log frame payload")
		}
		if err := t.apply(rec); err != nil {
			return errors.Wrap(errors.KindInvalidData, err, "log replay")
		}
	}
}

func (t *Table[T]) apply(rec record[T]) error {
	switch rec.Op {
	case "insert_row":
		return t.inner.InsertRow(rec.Index, rec.Vals)
	case "insert_col":
		return t.inner.InsertColumn(rec.Index, rec.Vals)
	case "remove_row":
		t.inner.RemoveRow(rec.Index)
		return nil
	case "remove_col":
		t.inner.RemoveColumn(rec.Index)
		return nil
	case "set_cell":
		if len(rec.Vals) != 1 {
			return errors.InvalidData("set_cell without value")
		}
		t.inner.SetCell(rec.Index, rec.Col, rec.Vals[0])
		return nil
	case "resize_rows":
		t.inner.SetPreferredRows(rec.Index)
		return nil
	case "resize_cols":
		t.inner.SetPreferredCols(rec.Index)
		return nil
	default:
		return errors.InvalidData("unknown log operation " + rec.Op)
	}
}

// append frames and writes one record. Failures are stashed instead
// of failing the mutation that already succeeded in memory.
func (t *Table[T]) append(rec record[T]) {
	payload, err := json.Marshal(rec)
	if err != nil {
		t.stash(errors.Storage("encode log record", err))
		return
	}
	var header [12]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(payload)))
	binary.BigEndian.PutUint64(header[4:12], xxhash.Sum64(payload))

	if _, err := t.log.Write(append(header[:], payload...)); err != nil {
		t.stash(errors.Storage("append log record", err))
	}
}

func (t *Table[T]) stash(err error) {
	Logger().Warn("store write failure", zap.String("id", t.id.String()), zap.Error(err))
	t.errMu.Lock()
	defer t.errMu.Unlock()
	if len(t.errs) == maxErrors {
		t.errs = t.errs[1:]
	}
	t.errs = append(t.errs, err)
}

// TakeErrors drains and returns the stashed write failures.
func (t *Table[T]) TakeErrors() []error {
	t.errMu.Lock()
	defer t.errMu.Unlock()
	out := t.errs
	t.errs = nil
	return out
}

// ID returns the table's persistent identity.
func (t *Table[T]) ID() uuid.UUID {
	return t.id
}

func (t *Table[T]) checkOpen() error {
	t.errMu.Lock()
	defer t.errMu.Unlock()
	if t.closed {
		return errors.Closed("store")
	}
	return nil
}

// Rows returns the current row count.
func (t *Table[T]) Rows() int { return t.inner.Rows() }

// Cols returns the current column count.
func (t *Table[T]) Cols() int { return t.inner.Cols() }

// Len returns the total cell count.
func (t *Table[T]) Len() int { return t.inner.Len() }

// IsEmpty reports whether the table holds no cells.
func (t *Table[T]) IsEmpty() bool { return t.inner.IsEmpty() }

// Cell returns the value at (row, col) from memory.
func (t *Table[T]) Cell(row, col int) (T, bool) { return t.inner.Cell(row, col) }

// Row iterates the cells of row r.
func (t *Table[T]) Row(r int) *table.CellIter[T] { return t.inner.Row(r) }

// Column iterates the cells of column c.
func (t *Table[T]) Column(c int) *table.CellIter[T] { return t.inner.Column(c) }

// Cells iterates every cell row-major.
func (t *Table[T]) Cells() *table.CellIter[T] { return t.inner.Cells() }

// SetCell writes through to the log after updating memory.
func (t *Table[T]) SetCell(row, col int, v T) (T, bool, error) {
	var zero T
	if err := t.checkOpen(); err != nil {
		return zero, false, err
	}
	old, ok := t.inner.SetCell(row, col, v)
	if ok {
		t.append(record[T]{Op: "set_cell", Index: row, Col: col, Vals: []T{v}})
	}
	return old, ok, nil
}

// PushRow appends a row and logs it.
func (t *Table[T]) PushRow(vals []T) error {
	return t.InsertRow(t.inner.Rows(), vals)
}

// InsertRow inserts a row and logs it.
func (t *Table[T]) InsertRow(r int, vals []T) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	if err := t.inner.InsertRow(r, vals); err != nil {
		return err
	}
	t.append(record[T]{Op: "insert_row", Index: r, Vals: vals})
	return nil
}

// PushColumn appends a column and logs it.
func (t *Table[T]) PushColumn(vals []T) error {
	return t.InsertColumn(t.inner.Cols(), vals)
}

// InsertColumn inserts a column and logs it.
func (t *Table[T]) InsertColumn(c int, vals []T) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	if err := t.inner.InsertColumn(c, vals); err != nil {
		return err
	}
	t.append(record[T]{Op: "insert_col", Index: c, Vals: vals})
	return nil
}

// RemoveRow removes a row and logs it.
func (t *Table[T]) RemoveRow(r int) ([]T, bool, error) {
	if err := t.checkOpen(); err != nil {
		return nil, false, err
	}
	vals, ok := t.inner.RemoveRow(r)
	if ok {
		t.append(record[T]{Op: "remove_row", Index: r})
	}
	return vals, ok, nil
}

// SetPreferredRows resizes the row extent and logs it.
func (t *Table[T]) SetPreferredRows(n int) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	t.inner.SetPreferredRows(n)
	t.append(record[T]{Op: "resize_rows", Index: n})
	return nil
}

// SetPreferredCols resizes the column extent and logs it.
func (t *Table[T]) SetPreferredCols(n int) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	t.inner.SetPreferredCols(n)
	t.append(record[T]{Op: "resize_cols", Index: n})
	return nil
}

// RemoveColumn removes a column and logs it.
func (t *Table[T]) RemoveColumn(c int) ([]T, bool, error) {
	if err := t.checkOpen(); err != nil {
		return nil, false, err
	}
	vals, ok := t.inner.RemoveColumn(c)
	if ok {
		t.append(record[T]{Op: "remove_col", Index: c})
	}
	return vals, ok, nil
}

// Flush persists the full state. When rewrite is true a fresh
// snapshot replaces the log; otherwise the log is synced to disk.
func (t *Table[T]) Flush(rewrite bool) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	if !rewrite {
		if err := t.log.Sync(); err != nil {
			return errors.Storage("sync operation log", err)
		}
		return nil
	}

	snap := snapshot[T]{
		ID:    t.id.String(),
		Rows:  t.inner.Rows(),
		Cols:  t.inner.Cols(),
		Cells: make([]T, 0, t.inner.Len()),
	}
	it := t.inner.Cells()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		snap.Cells = append(snap.Cells, v)
	}
	cells, err := json.Marshal(snap.Cells)
	if err != nil {
		return errors.Storage("encode snapshot", err)
	}
	snap.Checksum = xxhash.Sum64(cells)

	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Storage("encode snapshot", err)
	}

	// Write-then-rename keeps the previous snapshot intact if this
	// one tears.
	tmp := filepath.Join(t.dir, snapshotFile+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Storage("write snapshot", err)
	}
	if err := os.Rename(tmp, filepath.Join(t.dir, snapshotFile)); err != nil {
		return errors.Storage("publish snapshot", err)
	}
	if err := t.log.Truncate(0); err != nil {
		return errors.Storage("truncate operation log", err)
	}
	if _, err := t.log.Seek(0, io.SeekStart); err != nil {
		return errors.Storage("rewind operation log", err)
	}

	Logger().Debug("snapshot written",
		zap.String("id", t.id.String()),
		zap.Int("cells", len(snap.Cells)))
	return nil
}

// Close flushes a final snapshot and releases the log file. The
// table rejects mutations afterwards.
func (t *Table[T]) Close() error {
	if err := t.Flush(true); err != nil {
		if errors.IsKind(err, errors.KindClosed) {
			return nil
		}
		t.log.Close()
		return err
	}

	t.errMu.Lock()
	t.closed = true
	t.errMu.Unlock()

	if err := t.log.Close(); err != nil {
		return errors.Storage("close operation log", err)
	}
	return nil
}
