// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package filler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dacolabs/formcraft/internal/clock"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestModel() (*form.Model, *clock.Fake) {
	c := clock.NewFake(epoch)
	n := 0
	return &form.Model{Clock: c, NewID: func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}}, c
}

type failingStore struct {
	store.Store
	err error
}

func (f failingStore) Save(context.Context, model.Document) error { return f.err }

// twoStepForm stores a published form with a required name on step one and
// a required email on step two.
func twoStepForm(t *testing.T, st store.Store, m *form.Model) model.Document {
	t.Helper()
	doc := m.CreateDocument()
	doc, name, err := m.AddField(doc, 0, model.FieldText)
	require.NoError(t, err)
	doc = m.UpdateField(doc, name.ID, form.FieldPatch{Required: ptr(true), Label: ptr("Name")})

	doc, _ = m.AddStep(doc, "Contact")
	doc, email, err := m.AddField(doc, 1, model.FieldEmail)
	require.NoError(t, err)
	doc = m.UpdateField(doc, email.ID, form.FieldPatch{Required: ptr(true)})

	doc = m.Publish(doc)
	require.NoError(t, st.Save(context.Background(), doc))
	return doc
}

func ptr[T any](v T) *T { return &v }

func open(t *testing.T, st store.Store, m *form.Model, c clock.Clock, id string, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithModel(m), WithClock(c)}, opts...)
	s, err := Open(context.Background(), st, id, opts...)
	require.NoError(t, err)
	return s
}

func TestOpen(t *testing.T) {
	m, c := newTestModel()
	st := store.NewMemory()
	published := twoStepForm(t, st, m)

	draft := m.CreateDocument()
	require.NoError(t, st.Save(context.Background(), draft))

	tests := []struct {
		name      string
		id        string
		opts      []Option
		wantState State
	}{
		{name: "published", id: published.ID, wantState: StateActive},
		{name: "unknown", id: "form_missing", wantState: StateNotFound},
		{name: "draft", id: draft.ID, wantState: StateNotFound},
		{name: "draft preview", id: draft.ID, opts: []Option{WithPreview()}, wantState: StateActive},
		{name: "demo", id: DemoID, wantState: StateActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := open(t, st, m, c, tt.id, tt.opts...)
			assert.Equal(t, tt.wantState, s.State())
			if tt.wantState == StateActive {
				assert.Equal(t, 0, s.StepIndex())
				assert.Empty(t, s.Values())
				assert.Empty(t, s.Errors())
			}
		})
	}
}

func TestNotFound_RejectsEverything(t *testing.T) {
	m, c := newTestModel()
	s := open(t, store.NewMemory(), m, c, "form_missing")

	assert.ErrorIs(t, s.SetValue("x", "y"), ErrNotActive)
	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrNotActive)
	assert.ErrorIs(t, s.Back(), ErrNotActive)
	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestAdvance_InvalidStepStays(t *testing.T) {
	m, c := newTestModel()
	st := store.NewMemory()
	doc := twoStepForm(t, st, m)
	s := open(t, st, m, c, doc.ID)
	nameID := doc.Steps[0].Fields[0].ID

	res, err := s.Advance()
	require.NoError(t, err)

	assert.False(t, res.Valid)
	assert.Equal(t, 0, s.StepIndex())
	assert.Equal(t, map[string][]string{nameID: {"Name is required"}}, s.Errors())
}

func TestSetValue_ClearsOnlyThatField(t *testing.T) {
	m, c := newTestModel()
	doc := m.CreateDocument()
	doc, a, err := m.AddField(doc, 0, model.FieldText)
	require.NoError(t, err)
	doc, b, err := m.AddField(doc, 0, model.FieldText)
	require.NoError(t, err)
	doc = m.UpdateField(doc, a.ID, form.FieldPatch{Required: ptr(true)})
	doc = m.UpdateField(doc, b.ID, form.FieldPatch{Required: ptr(true)})
	doc = m.Publish(doc)

	st := store.NewMemory()
	require.NoError(t, st.Save(context.Background(), doc))
	s := open(t, st, m, c, doc.ID)

	_, err = s.Advance()
	require.NoError(t, err)
	require.Len(t, s.Errors(), 2)

	require.NoError(t, s.SetValue(a.ID, "x"))
	errs := s.Errors()
	assert.NotContains(t, errs, a.ID)
	assert.Contains(t, errs, b.ID)

	v, ok := s.Value(a.ID)
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	assert.ErrorIs(t, s.SetValue("ghost", "x"), ErrUnknownField)
}

func TestNavigation(t *testing.T) {
	m, c := newTestModel()
	st := store.NewMemory()
	doc := twoStepForm(t, st, m)
	s := open(t, st, m, c, doc.ID)

	require.NoError(t, s.Back())
	assert.Equal(t, 0, s.StepIndex(), "back on the first step stays")

	require.NoError(t, s.SetValue(doc.Steps[0].Fields[0].ID, "Ada"))
	res, err := s.Advance()
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 1, s.StepIndex())
	assert.True(t, s.IsLastStep())
	assert.Equal(t, "Contact", s.Step().Title)

	res, err = s.Advance()
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, s.Errors(), 1)

	require.NoError(t, s.Back())
	assert.Equal(t, 0, s.StepIndex())
	assert.Empty(t, s.Errors(), "back clears errors")

	v, ok := s.Value(doc.Steps[0].Fields[0].ID)
	assert.True(t, ok, "answers survive navigation")
	assert.Equal(t, "Ada", v)

	require.NoError(t, s.SetValue(doc.Steps[1].Fields[0].ID, "ada@example.com"))
	_, err = s.Advance()
	require.NoError(t, err)
	res, err = s.Advance()
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 1, s.StepIndex(), "advance on the last step stays")
}

func TestSubmit_OffLastStep(t *testing.T) {
	m, c := newTestModel()
	st := store.NewMemory()
	doc := twoStepForm(t, st, m)
	s := open(t, st, m, c, doc.ID)

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotLastStep)
	assert.Equal(t, StateActive, s.State())
}

func TestSubmit_EndToEnd(t *testing.T) {
	ctx := context.Background()
	m, c := newTestModel()
	st := store.NewMemory()

	doc := m.CreateDocument()
	doc, field, err := m.AddField(doc, 0, model.FieldText)
	require.NoError(t, err)
	doc = m.UpdateField(doc, field.ID, form.FieldPatch{Required: ptr(true)})
	doc = m.Publish(doc)
	require.NoError(t, st.Save(ctx, doc))

	s := open(t, st, m, c, doc.ID)

	res, err := s.Submit(ctx)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors[field.ID], 1)
	assert.Equal(t, StateActive, s.State())

	require.NoError(t, s.SetValue(field.ID, "hello"))
	res, err = s.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, StateSubmitted, s.State())

	stored, err := st.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, stored.Responses, len(doc.Responses)+1)
	last := stored.Responses[len(stored.Responses)-1]
	assert.Equal(t, "hello", last.Data[field.ID])
	assert.Equal(t, c.Now(), last.SubmittedAt)

	sub, ok := s.Submission()
	require.True(t, ok)
	assert.Equal(t, last.ID, sub.ID)

	_, err = s.Submit(ctx)
	assert.ErrorIs(t, err, ErrNotActive)
	assert.ErrorIs(t, s.SetValue(field.ID, "again"), ErrNotActive)
}

func TestSubmit_DemoAndPreviewAreNotStored(t *testing.T) {
	ctx := context.Background()
	m, c := newTestModel()
	st := store.NewMemory()

	draft := m.CreateDocument()
	require.NoError(t, st.Save(ctx, draft))

	preview := open(t, st, m, c, draft.ID, WithPreview())
	_, err := preview.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, preview.State())
	assert.Len(t, preview.Document().Responses, 1)

	stored, err := st.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Responses)

	demo := open(t, st, m, c, DemoID)
	require.Equal(t, 2, demo.StepCount())
	step := demo.Step()
	require.NoError(t, demo.SetValue(step.Fields[0].ID, "Ada Lovelace"))
	require.NoError(t, demo.SetValue(step.Fields[1].ID, "ada@example.com"))
	_, err = demo.Advance()
	require.NoError(t, err)
	require.NoError(t, demo.SetValue(demo.Step().Fields[0].ID, "Hello"))
	res, err := demo.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, StateSubmitted, demo.State())

	forms, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, forms, 1, "demo is never stored")
}

func TestSubmit_SaveFailure(t *testing.T) {
	ctx := context.Background()
	m, c := newTestModel()
	mem := store.NewMemory()

	doc := m.Publish(m.CreateDocument())
	require.NoError(t, mem.Save(ctx, doc))

	boom := errors.New("disk full")
	s := open(t, failingStore{Store: mem, err: boom}, m, c, doc.ID)

	_, err := s.Submit(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateActive, s.State())
	assert.Empty(t, s.Document().Responses)
}
