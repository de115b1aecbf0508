// Package tsv writes tab-separated value files for indicator reports.
package tsv

import (
	"encoding/csv"
	"io"
	"os"
)

// Writer is a csv.Writer fixed to tab separation that owns the underlying
// file handle.
type Writer struct {
	file io.WriteCloser

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

func NewWriter(file io.WriteCloser) *Writer {
	w := csv.NewWriter(file)
	w.Comma = '\t'
	return &Writer{
		Writer: w,
		file:   file,
	}
}

func (w *Writer) Close() error {
	w.Writer.Flush()
	return w.file.Close()
}
