// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema exports the JSON Schema that one response of a form
// satisfies.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/formcraft/internal/model"
	"github.com/google/jsonschema-go/jsonschema"
)

// Draft is the JSON Schema dialect of the exported schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// notBlank matches strings with at least one non-whitespace character.
const notBlank = `\S`

// numeral matches the decimal strings a number field accepts. Bounds only
// apply to answers given as JSON numbers.
const numeral = `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`

// Exporter renders the response schema of a document.
type Exporter struct{}

// Name returns the format identifier.
func (e *Exporter) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema files.
func (e *Exporter) FileExtension() string {
	return ".schema.json"
}

// Export renders the schema of doc's responses as indented JSON.
func (e *Exporter) Export(doc model.Document) ([]byte, error) {
	b, err := json.MarshalIndent(Build(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for form %q: %w", doc.ID, err)
	}
	return append(b, '\n'), nil
}

// Build returns the schema of a response's data: an object keyed by field
// id, one property per field.
func Build(doc model.Document) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Schema:      Draft,
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Type:        "object",
		Properties:  map[string]*jsonschema.Schema{},
	}
	for _, f := range doc.Fields() {
		s.Properties[f.ID] = fieldSchema(f)
		if f.Required {
			s.Required = append(s.Required, f.ID)
		}
	}
	return s
}

func fieldSchema(f model.Field) *jsonschema.Schema {
	p := &jsonschema.Schema{
		Title:       f.Label,
		Description: f.HelpText,
	}

	switch f.Type {
	case model.FieldCheckbox:
		p.Type = "boolean"
		if f.Required {
			p.Enum = []any{true}
		}
		return p
	case model.FieldNumber:
		// answers arrive as numeric strings
		p.Types = []string{"number", "string"}
		p.Minimum = f.Min
		p.Maximum = f.Max
		if f.Required {
			p.Pattern = `^\s*` + numeral + `\s*$`
		} else {
			p.Pattern = `^\s*(` + numeral + `)?\s*$`
		}
		return p
	}

	p.Type = "string"
	if f.Required {
		p.Pattern = notBlank
	}
	switch f.Type {
	case model.FieldText, model.FieldTextarea:
		p.MinLength = positive(f.MinLength)
		p.MaxLength = positive(f.MaxLength)
	case model.FieldEmail:
		p.AnyOf = skippable(f, &jsonschema.Schema{Format: "email"})
	case model.FieldDate:
		p.AnyOf = skippable(f, &jsonschema.Schema{Format: "date"})
	case model.FieldDropdown:
		for _, o := range f.Options {
			p.Enum = append(p.Enum, o)
		}
		if !f.Required {
			p.Enum = append(p.Enum, "")
		}
	}
	if len(p.AnyOf) == 1 {
		p.Format, p.AnyOf = p.AnyOf[0].Format, nil
	}
	return p
}

// skippable returns the alternatives a string answer may match. An optional
// field left empty is stored as "".
func skippable(f model.Field, s *jsonschema.Schema) []*jsonschema.Schema {
	if f.Required {
		return []*jsonschema.Schema{s}
	}
	var empty any = ""
	return []*jsonschema.Schema{s, {Const: &empty}}
}

// positive drops unset and zero bounds, which do not constrain answers.
func positive(p *int) *int {
	if p == nil || *p <= 0 {
		return nil
	}
	v := *p
	return &v
}
