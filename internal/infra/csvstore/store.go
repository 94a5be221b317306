package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/port"
)

// Store is the per-class CSV adapter. Files are comma-delimited with
// minimal quoting, one row per successfully detected sample.
type Store struct{}

func New() *Store {
	return &Store{}
}

type rowWriter struct {
	f *os.File
	w *csv.Writer
}

// OpenWriter truncates any existing file at path. Rows are flushed on
// every append so an interrupted run leaves a readable prefix behind.
func (s *Store) OpenWriter(path string) (port.RecordWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv %s: %w", path, err)
	}
	return &rowWriter{f: f, w: csv.NewWriter(f)}, nil
}

func (w *rowWriter) Append(fields []string) error {
	if err := w.w.Write(fields); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

func (w *rowWriter) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// ReadRows loads every non-empty row from path, tolerating rows of
// varying length.
func (s *Store) ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", path, err)
		}
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		rows = append(rows, row)
	}
}

// WriteRows replaces the file at path with exactly the given rows.
func (s *Store) WriteRows(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
