// Package datasource provides the table sources the catalog store reads
// from: local CSV files and objects in an S3-compatible bucket.
package datasource

import (
	"context"
	"io"
	"os"
)

// File reads a table from the local filesystem.
type File struct {
	Path string
}

func (f File) Label() string { return f.Path }

func (f File) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}
