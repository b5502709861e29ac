// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package responses exports a form's collected responses as CSV.
package responses

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dacolabs/formcraft/internal/model"
)

// Exporter renders responses as CSV: one row per response, one column per
// field in traversal order.
type Exporter struct{}

// Name returns the format identifier.
func (e *Exporter) Name() string {
	return "csv"
}

// FileExtension returns the file extension for CSV files.
func (e *Exporter) FileExtension() string {
	return ".csv"
}

// Export renders doc's responses as CSV.
func (e *Exporter) Export(doc model.Document) ([]byte, error) {
	fields := doc.Fields()

	header := make([]string, 0, len(fields)+2)
	header = append(header, "Response ID", "Submitted At")
	for _, f := range fields {
		header = append(header, f.Label)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range doc.Responses {
		row := make([]string, 0, len(header))
		row = append(row, r.ID, r.SubmittedAt.UTC().Format(time.RFC3339))
		for _, f := range fields {
			row = append(row, Cell(r.Data[f.ID]))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write responses of form %q: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}

// Cell formats one answer. Missing answers are empty and checkboxes print
// as true or false.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
