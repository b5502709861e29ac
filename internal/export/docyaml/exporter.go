// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package docyaml exports a form document as YAML.
package docyaml

import (
	"bytes"
	"fmt"

	"github.com/dacolabs/formcraft/internal/model"
	"gopkg.in/yaml.v3"
)

// Exporter renders documents as YAML.
type Exporter struct{}

// Name returns the format identifier.
func (e *Exporter) Name() string {
	return "yaml"
}

// FileExtension returns the file extension for YAML files.
func (e *Exporter) FileExtension() string {
	return ".yaml"
}

// Export renders doc as YAML with two-space indentation.
func (e *Exporter) Export(doc model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode form %q: %w", doc.ID, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
