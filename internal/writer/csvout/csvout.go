// Package csvout writes the aggregated extraction result as a CSV artifact:
// one fixed header line followed by one line per row.
package csvout

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"cardetl/internal/extract"
)

// Render returns the full CSV content for rows: the extract.Columns header
// plus each row's values in the same order. Fields containing the
// delimiter, quote character, or newline are quoted per RFC 4180, with
// embedded quotes doubled.
func Render(rows []extract.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(extract.Columns); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Values()); err != nil {
			return nil, fmt.Errorf("csv row %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders rows and writes the result to path, overwriting any
// existing file in a single operation so no partially written artifact is
// left behind. An empty aggregate is reported and produces no file.
func Write(rows []extract.Row, path string) error {
	if len(rows) == 0 {
		log.Printf("csv: no data to write, skipping %s", path)
		return nil
	}

	b, err := Render(rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
