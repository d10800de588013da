package csvio

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/wippyai/memtable/cell"
	"github.com/wippyai/memtable/errors"
	"github.com/wippyai/memtable/table"
)

// Read parses CSV into a dynamic string table. Every record must
// have the same field count; ragged input is rejected with the
// offending record index.
func Read(r io.Reader) (*table.Grid[string], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // length enforced by the table below

	g := table.New[string]()
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, errors.Wrap(errors.KindInvalidData, err, "csv input")
		}
		if err := g.PushRow(rec); err != nil {
			if errors.IsKind(err, errors.KindSizeMismatch) {
				return nil, errors.RaggedInput(i, g.Cols(), len(rec))
			}
			return nil, err
		}
	}
}

// ReadTyped parses CSV into a table of typed cells, converting each
// field with cell.Parse.
func ReadTyped(r io.Reader) (*table.Grid[cell.Value], error) {
	raw, err := Read(r)
	if err != nil {
		return nil, err
	}
	g := table.New[cell.Value]()
	row := make([]cell.Value, 0, raw.Cols())
	for i := 0; i < raw.Rows(); i++ {
		row = row[:0]
		it := raw.Row(i)
		for {
			s, ok := it.Next()
			if !ok {
				break
			}
			row = append(row, cell.Parse(s))
		}
		if err := g.PushRow(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Write renders a string table as CSV, one record per row.
func Write(t table.Table[string], w io.Writer) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 0, t.Cols())
	for r := 0; r < t.Rows(); r++ {
		rec = rec[:0]
		it := t.Row(r)
		for {
			s, ok := it.Next()
			if !ok {
				break
			}
			rec = append(rec, s)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(errors.KindStorage, err, "csv output")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.KindStorage, err, "csv output")
	}
	return nil
}

// WriteTyped renders a typed table as CSV using each cell's text
// form.
func WriteTyped(t table.Table[cell.Value], w io.Writer) error {
	out := table.New[string]()
	rec := make([]string, 0, t.Cols())
	for r := 0; r < t.Rows(); r++ {
		rec = rec[:0]
		it := t.Row(r)
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			rec = append(rec, v.String())
		}
		if err := out.PushRow(rec); err != nil {
			return err
		}
	}
	return Write(out, w)
}

// ReadFile reads a CSV file into a string table.
func ReadFile(path string) (*table.Grid[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, err, "open csv file")
	}
	defer f.Close()
	return Read(f)
}

// ReadTypedFile reads a CSV file into a typed table.
func ReadTypedFile(path string) (*table.Grid[cell.Value], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, err, "open csv file")
	}
	defer f.Close()
	return ReadTyped(f)
}

// WriteFile writes a string table to a CSV file.
func WriteFile(t table.Table[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.KindStorage, err, "create csv file")
	}
	if err := Write(t, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.KindStorage, err, "close csv file")
	}
	return nil
}
