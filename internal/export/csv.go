// Package export writes normalized records in the table layout expected by
// the persistence collaborator.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/matteo/grant-normalizer/internal/schema"
	"github.com/matteo/grant-normalizer/internal/types"
)

// WriteCSV writes the records as CSV, one row per record, with a header row
// in schema column order.
func WriteCSV(w io.Writer, records []types.NormalizedRecord) error {
	columns := schema.Columns()

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(columns))
	for i, record := range records {
		for j, col := range columns {
			row[j] = record[col]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the records to a CSV file at path.
func WriteCSVFile(path string, records []types.NormalizedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	return nil
}
