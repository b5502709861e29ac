// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package form implements the operations that edit a form document.
//
// Every operation takes a document value and returns a new one; the input is
// never modified. Structural errors abort the operation without producing a
// partially edited document.
package form

import (
	"errors"
	"fmt"
	"maps"

	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/clock"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/google/uuid"
)

var (
	// ErrInvalidStepIndex indicates a step index outside the document's steps.
	ErrInvalidStepIndex = errors.New("invalid step index")

	// ErrInvalidFieldIndex indicates a field index outside a step's fields.
	ErrInvalidFieldIndex = errors.New("invalid field index")

	// ErrLastStep indicates an attempt to remove the only remaining step.
	ErrLastStep = errors.New("a form needs at least one step")
)

// Model creates and edits documents. The zero value is not usable; call New.
type Model struct {
	Clock clock.Clock
	NewID func() string
}

// New returns a Model backed by the wall clock and random UUIDs.
func New() *Model {
	return &Model{
		Clock: clock.Real{},
		NewID: uuid.NewString,
	}
}

// FieldPatch is a partial field update. nil means "no change".
// The field's ID and Type are not patchable.
type FieldPatch struct {
	Label       *string   `json:"label,omitempty" yaml:"label,omitempty"`
	Required    *bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Placeholder *string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    *string   `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Options     *[]string `json:"options,omitempty" yaml:"options,omitempty"`
	Rows        *int      `json:"rows,omitempty" yaml:"rows,omitempty"`
	MinLength   **int     `json:"-" yaml:"-"`
	MaxLength   **int     `json:"-" yaml:"-"`
	Min         **float64 `json:"-" yaml:"-"`
	Max         **float64 `json:"-" yaml:"-"`
}

// Set returns a constraint patch value that sets the bound to v.
func Set[T any](v T) **T {
	p := &v
	return &p
}

// Clear returns a constraint patch value that removes the bound.
func Clear[T any]() **T {
	var p *T
	return &p
}

// StepPatch is a partial step update.
type StepPatch struct {
	Title *string `json:"title,omitempty" yaml:"title,omitempty"`
}

// MetaPatch is a partial update of a document's top-level attributes.
// It never touches steps, responses or the id.
type MetaPatch struct {
	Title       *string `json:"title,omitempty" yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (m *Model) documentID() string {
	return "form_" + m.NewID()
}

// CreateDocument returns a new unpublished document with one empty step.
func (m *Model) CreateDocument() model.Document {
	now := m.Clock.Now()
	return model.Document{
		ID:          m.documentID(),
		Title:       "Untitled Form",
		Description: "",
		Steps: []model.Step{
			{ID: m.NewID(), Title: "Step 1", Fields: []model.Field{}},
		},
		CurrentStepIndex: 0,
		CreatedAt:        now,
		UpdatedAt:        now,
		IsPublished:      false,
		Responses:        []model.Submission{},
	}
}

// FromTemplate returns a new unpublished document seeded from t. Steps and
// fields get fresh ids so the document never shares ids with the template.
func (m *Model) FromTemplate(t model.Template) model.Document {
	doc := m.CreateDocument()
	doc.Title = t.Name
	doc.Description = t.Description
	if len(t.Steps) == 0 {
		return doc
	}
	steps := make([]model.Step, len(t.Steps))
	for i, s := range t.Steps {
		s = s.Clone()
		s.ID = m.NewID()
		for j := range s.Fields {
			s.Fields[j].ID = m.NewID()
		}
		steps[i] = s
	}
	doc.Steps = steps
	return doc
}

func checkStep(doc model.Document, stepIndex int) error {
	if stepIndex < 0 || stepIndex >= len(doc.Steps) {
		return fmt.Errorf("%w: %d (form has %d steps)", ErrInvalidStepIndex, stepIndex, len(doc.Steps))
	}
	return nil
}

// AddField appends a new field of type typ, carrying the catalog defaults,
// to the step at stepIndex. It returns the new document and the new field.
func (m *Model) AddField(doc model.Document, stepIndex int, typ model.FieldType) (model.Document, model.Field, error) {
	f, err := catalog.Defaults(typ)
	if err != nil {
		return doc, model.Field{}, err
	}
	if err := checkStep(doc, stepIndex); err != nil {
		return doc, model.Field{}, err
	}
	f.ID = m.NewID()

	out := doc.Clone()
	out.Steps[stepIndex].Fields = append(out.Steps[stepIndex].Fields, f)
	return out, f.Clone(), nil
}

// FindField locates a field by id. It returns the step and field indexes,
// or ok=false when no step holds the field.
func FindField(doc model.Document, fieldID string) (stepIndex, fieldIndex int, ok bool) {
	for si, s := range doc.Steps {
		for fi, f := range s.Fields {
			if f.ID == fieldID {
				return si, fi, true
			}
		}
	}
	return -1, -1, false
}

// UpdateField merges p onto the field with the given id, in whichever step
// holds it. An unknown id leaves the document unchanged.
func (m *Model) UpdateField(doc model.Document, fieldID string, p FieldPatch) model.Document {
	si, fi, ok := FindField(doc, fieldID)
	if !ok {
		return doc
	}
	out := doc.Clone()
	applyFieldPatch(&out.Steps[si].Fields[fi], p)
	return out
}

func applyFieldPatch(f *model.Field, p FieldPatch) {
	if p.Label != nil {
		f.Label = *p.Label
	}
	if p.Required != nil {
		f.Required = *p.Required
	}
	if p.Placeholder != nil {
		f.Placeholder = *p.Placeholder
	}
	if p.HelpText != nil {
		f.HelpText = *p.HelpText
	}
	if p.Options != nil {
		f.Options = append([]string{}, (*p.Options)...)
	}
	if p.Rows != nil {
		f.Rows = *p.Rows
	}
	if p.MinLength != nil {
		f.MinLength = copyBound(*p.MinLength)
	}
	if p.MaxLength != nil {
		f.MaxLength = copyBound(*p.MaxLength)
	}
	if p.Min != nil {
		f.Min = copyBound(*p.Min)
	}
	if p.Max != nil {
		f.Max = copyBound(*p.Max)
	}
}

func copyBound[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// DeleteField removes the field with the given id. An unknown id leaves the
// document unchanged.
func (m *Model) DeleteField(doc model.Document, fieldID string) model.Document {
	si, fi, ok := FindField(doc, fieldID)
	if !ok {
		return doc
	}
	out := doc.Clone()
	fields := out.Steps[si].Fields
	out.Steps[si].Fields = append(fields[:fi], fields[fi+1:]...)
	return out
}

// ReorderField moves the field at from to position to within one step,
// shifting the fields in between.
func (m *Model) ReorderField(doc model.Document, stepIndex, from, to int) (model.Document, error) {
	if err := checkStep(doc, stepIndex); err != nil {
		return doc, err
	}
	n := len(doc.Steps[stepIndex].Fields)
	if from < 0 || from >= n {
		return doc, fmt.Errorf("%w: from %d (step has %d fields)", ErrInvalidFieldIndex, from, n)
	}
	if to < 0 || to >= n {
		return doc, fmt.Errorf("%w: to %d (step has %d fields)", ErrInvalidFieldIndex, to, n)
	}

	out := doc.Clone()
	fields := out.Steps[stepIndex].Fields
	moved := fields[from]
	fields = append(fields[:from], fields[from+1:]...)
	fields = append(fields[:to], append([]model.Field{moved}, fields[to:]...)...)
	out.Steps[stepIndex].Fields = fields
	return out, nil
}

// AddStep appends an empty step. An empty title becomes "Step N".
func (m *Model) AddStep(doc model.Document, title string) (model.Document, model.Step) {
	if title == "" {
		title = fmt.Sprintf("Step %d", len(doc.Steps)+1)
	}
	s := model.Step{ID: m.NewID(), Title: title, Fields: []model.Field{}}
	out := doc.Clone()
	out.Steps = append(out.Steps, s)
	return out, s
}

// UpdateStep merges p onto the step at stepIndex.
func (m *Model) UpdateStep(doc model.Document, stepIndex int, p StepPatch) (model.Document, error) {
	if err := checkStep(doc, stepIndex); err != nil {
		return doc, err
	}
	out := doc.Clone()
	if p.Title != nil {
		out.Steps[stepIndex].Title = *p.Title
	}
	return out, nil
}

// DeleteStep removes the step at stepIndex together with its fields. The
// builder cursor is kept on a valid step.
func (m *Model) DeleteStep(doc model.Document, stepIndex int) (model.Document, error) {
	if err := checkStep(doc, stepIndex); err != nil {
		return doc, err
	}
	if len(doc.Steps) == 1 {
		return doc, ErrLastStep
	}
	out := doc.Clone()
	out.Steps = append(out.Steps[:stepIndex], out.Steps[stepIndex+1:]...)
	if out.CurrentStepIndex > stepIndex || out.CurrentStepIndex >= len(out.Steps) {
		out.CurrentStepIndex--
	}
	return out, nil
}

// SelectStep moves the builder cursor to stepIndex.
func (m *Model) SelectStep(doc model.Document, stepIndex int) (model.Document, error) {
	if err := checkStep(doc, stepIndex); err != nil {
		return doc, err
	}
	out := doc.Clone()
	out.CurrentStepIndex = stepIndex
	return out, nil
}

// UpdateMeta merges p onto the document's top-level attributes.
func (m *Model) UpdateMeta(doc model.Document, p MetaPatch) model.Document {
	out := doc.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	return out
}

// Publish marks the document as published and refreshes UpdatedAt.
func (m *Model) Publish(doc model.Document) model.Document {
	out := doc.Clone()
	out.IsPublished = true
	out.UpdatedAt = m.Clock.Now()
	return out
}

// AppendResponse records a new submission of data.
func (m *Model) AppendResponse(doc model.Document, data map[string]any) (model.Document, model.Submission) {
	sub := model.Submission{
		ID:          m.NewID(),
		Data:        maps.Clone(data),
		SubmittedAt: m.Clock.Now(),
	}
	if sub.Data == nil {
		sub.Data = map[string]any{}
	}
	out := doc.Clone()
	out.Responses = append(out.Responses, sub)
	return out, sub
}
