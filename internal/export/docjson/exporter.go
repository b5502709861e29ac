// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package docjson exports a form document as JSON, in the same shape the
// store persists it.
package docjson

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/formcraft/internal/model"
)

// Exporter renders documents as indented JSON.
type Exporter struct{}

// Name returns the format identifier.
func (e *Exporter) Name() string {
	return "json"
}

// FileExtension returns the file extension for JSON files.
func (e *Exporter) FileExtension() string {
	return ".json"
}

// Export renders doc as JSON.
func (e *Exporter) Export(doc model.Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode form %q: %w", doc.ID, err)
	}
	return append(b, '\n'), nil
}
