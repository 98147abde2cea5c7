// Package render — CSV renderer.
// Serializes listing records into CSV with the fixed eleven-column
// header. encoding/csv handles quoting of embedded commas and quotes,
// so display text passes through untouched.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/kaiosilva-dataeng/warmane-trade/core"
)

// CSVRenderer produces CSV output from listing records.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes the header row followed by one row per record, in the
// order the records were extracted.
func (r *CSVRenderer) Render(records []core.ListingRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(core.Header); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Fields()); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}
