// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package export provides the form export registry.
package export

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dacolabs/formcraft/internal/model"
)

// ErrUnknownFormat indicates an export format that is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter defines the interface all export formats must implement.
type Exporter interface {
	// Name returns the format identifier (e.g., "json", "csv")
	Name() string

	// Export renders the document in the target format
	Export(doc model.Document) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".json", ".md")
	FileExtension() string
}

// Register maps format names to exporters.
type Register map[string]Exporter

// Add registers e under its own name.
func (r Register) Add(e Exporter) {
	r[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r Register) Get(name string) (Exporter, error) {
	e, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownFormat, name, strings.Join(r.Available(), ", "))
	}
	return e, nil
}

// Available returns all registered format names, sorted.
func (r Register) Available() []string {
	return slices.Sorted(maps.Keys(r))
}

// FileName returns the default output file name for doc in format e.
func FileName(doc model.Document, e Exporter) string {
	return doc.ID + e.FileExtension()
}
