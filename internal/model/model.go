// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package model defines the form document types shared by the builder and the filler.
package model

import (
	"slices"
	"time"
)

// FieldType is the type tag of a form field.
type FieldType string

// Registered field type tags.
const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldDropdown FieldType = "dropdown"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
)

// Field is one form element instance.
// ID and Type never change after creation.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Required    bool      `json:"required" yaml:"required"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string    `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`     // dropdown only
	Rows        int       `json:"rows,omitempty" yaml:"rows,omitempty"`           // textarea only
	MinLength   *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"` // text, textarea
	MaxLength   *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"` // text, textarea
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`             // number
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`             // number
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	f.Options = slices.Clone(f.Options)
	f.MinLength = clonePtr(f.MinLength)
	f.MaxLength = clonePtr(f.MaxLength)
	f.Min = clonePtr(f.Min)
	f.Max = clonePtr(f.Max)
	return f
}

// Step is an ordered page of fields. Field order drives both the builder
// canvas and the filler traversal.
type Step struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	fields := make([]Field, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.Clone()
	}
	s.Fields = fields
	return s
}

// Submission is one respondent's completed answer set, keyed by field id.
type Submission struct {
	ID          string         `json:"id" yaml:"id"`
	Data        map[string]any `json:"data" yaml:"data"`
	SubmittedAt time.Time      `json:"submittedAt" yaml:"submittedAt"`
}

// Document is a complete editable and publishable form.
//
// Steps is never empty and CurrentStepIndex always indexes into it.
type Document struct {
	ID               string       `json:"id" yaml:"id"`
	Title            string       `json:"title" yaml:"title"`
	Description      string       `json:"description" yaml:"description"`
	Steps            []Step       `json:"steps" yaml:"steps"`
	CurrentStepIndex int          `json:"currentStepIndex" yaml:"currentStepIndex"`
	CreatedAt        time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt" yaml:"updatedAt"`
	IsPublished      bool         `json:"isPublished" yaml:"isPublished"`
	Responses        []Submission `json:"responses" yaml:"responses"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	steps := make([]Step, len(d.Steps))
	for i, s := range d.Steps {
		steps[i] = s.Clone()
	}
	d.Steps = steps

	responses := make([]Submission, len(d.Responses))
	for i, r := range d.Responses {
		data := make(map[string]any, len(r.Data))
		for k, v := range r.Data {
			data[k] = v
		}
		r.Data = data
		responses[i] = r
	}
	d.Responses = responses
	return d
}

// CurrentStep returns the step under the builder cursor.
func (d Document) CurrentStep() Step {
	return d.Steps[d.CurrentStepIndex]
}

// Fields returns every field of the document in traversal order.
func (d Document) Fields() []Field {
	var out []Field
	for _, s := range d.Steps {
		out = append(out, s.Fields...)
	}
	return out
}

// Template is a ready-made form used to seed demo content.
type Template struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
