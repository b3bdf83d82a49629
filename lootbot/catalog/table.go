package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source resolves a table identifier to its content. Label is used in error
// messages so users can tell which of the two tables is broken.
type Source interface {
	Label() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Row maps column names from the header line to cell values. Every row of a
// table carries exactly the header's columns.
type Row map[string]string

// Table is the parsed form of one delimited source.
type Table struct {
	Columns []string
	Rows    []Row
}

// ReadTable parses src into rows keyed by the header line. Row order is
// preserved exactly as stored; nothing is deduplicated or sorted. Short
// records are padded with empty cells and long records truncated to the
// header width.
func ReadTable(ctx context.Context, src Source) (*Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, &DataUnavailableError{Source: src.Label(), Reason: err.Error()}
	}
	defer rc.Close()

	// Tolerate a UTF-8 byte order mark at the start of the content.
	r := csv.NewReader(transform.NewReader(rc, unicode.UTF8BOM.NewDecoder()))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataUnavailableError{Source: src.Label(), Reason: "no header row"}
	}
	if err != nil {
		return nil, &DataUnavailableError{Source: src.Label(), Reason: err.Error()}
	}

	t := &Table{Columns: header}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DataUnavailableError{Source: src.Label(), Reason: err.Error()}
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
