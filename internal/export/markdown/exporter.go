// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown exports a human-readable description of a form.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/model"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"inc":         func(i int) int { return i + 1 },
	"cell":        cell,
	"constraints": formatConstraints,
}

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Exporter renders documents as markdown.
type Exporter struct{}

// Name returns the format identifier.
func (e *Exporter) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (e *Exporter) FileExtension() string {
	return ".md"
}

// Export renders doc as markdown: one section per step, one table row per field.
func (e *Exporter) Export(doc model.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", doc); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatConstraints formats the constraints for a field as a human-readable string.
func formatConstraints(f model.Field) string {
	var parts []string

	if len(f.Options) > 0 {
		opts := make([]string, len(f.Options))
		for i, o := range f.Options {
			opts[i] = fmt.Sprintf("`%s`", cell(o))
		}
		parts = append(parts, "options: "+strings.Join(opts, ", "))
	}

	if f.MinLength != nil && *f.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("minLength: %d", *f.MinLength))
	}

	if f.MaxLength != nil && *f.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("maxLength: %d", *f.MaxLength))
	}

	if f.Min != nil {
		parts = append(parts, "min: "+catalog.FormatNumber(*f.Min))
	}

	if f.Max != nil {
		parts = append(parts, "max: "+catalog.FormatNumber(*f.Max))
	}

	if f.Rows > 0 {
		parts = append(parts, fmt.Sprintf("rows: %d", f.Rows))
	}

	if f.HelpText != "" {
		parts = append(parts, "help: "+cell(f.HelpText))
	}

	return strings.Join(parts, ", ")
}
