// Package audit exports adjudication audit rows to Parquet for offline
// analysis of estimate quality across insurers and plans.
package audit

import (
	"fmt"
	"io"
	"os"

	goparquet "github.com/parquet-go/parquet-go"
)

// WriteParquet writes rows to w as a single Parquet file.
func WriteParquet(w io.Writer, rows []Row) error {
	writer := goparquet.NewGenericWriter[Row](w)
	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			return fmt.Errorf("write rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return nil
}

// ReadParquet reads all audit rows back from a Parquet file on disk.
func ReadParquet(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet: %w", err)
	}
	pf, err := goparquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	reader := goparquet.NewGenericReader[Row](pf)
	defer reader.Close()

	var rows []Row
	buf := make([]Row, 256)
	for {
		n, readErr := reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read rows: %w", readErr)
		}
	}
	return rows, nil
}
