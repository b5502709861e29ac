// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package form

import (
	"fmt"
	"testing"
	"time"

	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/clock"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestModel() (*Model, *clock.Fake) {
	c := clock.NewFake(epoch)
	n := 0
	return &Model{
		Clock: c,
		NewID: func() string {
			n++
			return fmt.Sprintf("id%d", n)
		},
	}, c
}

func docWithFields(t *testing.T, m *Model, n int) model.Document {
	t.Helper()
	doc := m.CreateDocument()
	for i := 0; i < n; i++ {
		var err error
		doc, _, err = m.AddField(doc, 0, model.FieldText)
		require.NoError(t, err)
	}
	return doc
}

func fieldIDs(s model.Step) []string {
	ids := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		ids[i] = f.ID
	}
	return ids
}

func TestCreateDocument(t *testing.T) {
	m, _ := newTestModel()
	doc := m.CreateDocument()

	assert.Equal(t, "form_id1", doc.ID)
	assert.Equal(t, "Untitled Form", doc.Title)
	require.Len(t, doc.Steps, 1)
	assert.Equal(t, "id2", doc.Steps[0].ID)
	assert.Equal(t, "Step 1", doc.Steps[0].Title)
	assert.Empty(t, doc.Steps[0].Fields)
	assert.Equal(t, 0, doc.CurrentStepIndex)
	assert.False(t, doc.IsPublished)
	assert.Empty(t, doc.Responses)
	assert.Equal(t, epoch, doc.CreatedAt)
	assert.Equal(t, epoch, doc.UpdatedAt)
}

func TestNew_GeneratesUniqueIDs(t *testing.T) {
	m := New()
	a, b := m.CreateDocument(), m.CreateDocument()
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Steps[0].ID, b.Steps[0].ID)
}

func TestFromTemplate(t *testing.T) {
	m, _ := newTestModel()
	tmpl, err := catalog.Template("survey")
	require.NoError(t, err)

	doc := m.FromTemplate(tmpl)
	assert.Equal(t, "Customer Survey", doc.Title)
	require.Len(t, doc.Steps, 2)
	assert.False(t, doc.IsPublished)

	seen := map[string]bool{}
	for _, f := range doc.Fields() {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
		assert.NotContains(t, []string{"1", "2", "3", "4"}, f.ID)
	}
	assert.Len(t, seen, 4)
}

func TestAddField(t *testing.T) {
	m, _ := newTestModel()
	doc := m.CreateDocument()

	out, f, err := m.AddField(doc, 0, model.FieldDropdown)
	require.NoError(t, err)

	assert.Empty(t, doc.Steps[0].Fields, "input must not change")
	require.Len(t, out.Steps[0].Fields, 1)
	assert.Equal(t, f, out.Steps[0].Fields[0])
	assert.Equal(t, model.FieldDropdown, f.Type)
	assert.Equal(t, "Select Option", f.Label)
	assert.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, f.Options)
	assert.NotEmpty(t, f.ID)
}

func TestAddField_Errors(t *testing.T) {
	m, _ := newTestModel()
	doc := m.CreateDocument()

	_, _, err := m.AddField(doc, 0, "signature")
	assert.ErrorIs(t, err, catalog.ErrUnknownFieldType)

	_, _, err = m.AddField(doc, 1, model.FieldText)
	assert.ErrorIs(t, err, ErrInvalidStepIndex)

	_, _, err = m.AddField(doc, -1, model.FieldText)
	assert.ErrorIs(t, err, ErrInvalidStepIndex)
}

func TestAddThenDeleteField_IsInverse(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 2)

	added, f, err := m.AddField(doc, 0, model.FieldEmail)
	require.NoError(t, err)
	assert.Len(t, added.Steps[0].Fields, 3)

	restored := m.DeleteField(added, f.ID)
	assert.Equal(t, doc.Steps[0].Fields, restored.Steps[0].Fields)
	assert.Len(t, restored.Steps[0].Fields, 2)
}

func TestUpdateField(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 1)
	id := doc.Steps[0].Fields[0].ID

	label := "Full name"
	required := true
	out := m.UpdateField(doc, id, FieldPatch{
		Label:     &label,
		Required:  &required,
		MinLength: Set(2),
		MaxLength: Set(40),
	})

	f := out.Steps[0].Fields[0]
	assert.Equal(t, id, f.ID)
	assert.Equal(t, model.FieldText, f.Type)
	assert.Equal(t, "Full name", f.Label)
	assert.True(t, f.Required)
	require.NotNil(t, f.MinLength)
	assert.Equal(t, 2, *f.MinLength)
	assert.Equal(t, "Enter text...", f.Placeholder, "untouched attributes survive")
	assert.Equal(t, "Text Field", doc.Steps[0].Fields[0].Label, "input must not change")

	cleared := m.UpdateField(out, id, FieldPatch{MinLength: Clear[int]()})
	assert.Nil(t, cleared.Steps[0].Fields[0].MinLength)
	assert.NotNil(t, cleared.Steps[0].Fields[0].MaxLength)
}

func TestUpdateField_FindsFieldInAnyStep(t *testing.T) {
	m, _ := newTestModel()
	doc := m.CreateDocument()
	doc, _ = m.AddStep(doc, "")
	doc, f, err := m.AddField(doc, 1, model.FieldNumber)
	require.NoError(t, err)

	out := m.UpdateField(doc, f.ID, FieldPatch{Min: Set(1.0), Max: Set(10.0)})
	got := out.Steps[1].Fields[0]
	assert.Equal(t, 1.0, *got.Min)
	assert.Equal(t, 10.0, *got.Max)
}

func TestUpdateAndDeleteField_UnknownIDIsNoop(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 2)
	label := "x"

	assert.Equal(t, doc, m.UpdateField(doc, "missing", FieldPatch{Label: &label}))
	assert.Equal(t, doc, m.DeleteField(doc, "missing"))
}

func TestReorderField(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 4)
	orig := fieldIDs(doc.Steps[0])

	tests := []struct {
		from, to int
		want     []int
	}{
		{0, 2, []int{1, 2, 0, 3}},
		{0, 3, []int{1, 2, 3, 0}},
		{3, 0, []int{3, 0, 1, 2}},
		{1, 1, []int{0, 1, 2, 3}},
		{2, 1, []int{0, 2, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d->%d", tt.from, tt.to), func(t *testing.T) {
			out, err := m.ReorderField(doc, 0, tt.from, tt.to)
			require.NoError(t, err)
			want := make([]string, len(tt.want))
			for i, p := range tt.want {
				want[i] = orig[p]
			}
			assert.Equal(t, want, fieldIDs(out.Steps[0]))
			assert.Equal(t, orig, fieldIDs(doc.Steps[0]), "input must not change")
		})
	}
}

func TestReorderField_MoveFirstToIndexTwoOfFour(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 4)
	orig := fieldIDs(doc.Steps[0])

	out, err := m.ReorderField(doc, 0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{orig[1], orig[2], orig[0], orig[3]}, fieldIDs(out.Steps[0]))
}

func TestReorderField_Errors(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 2)

	_, err := m.ReorderField(doc, 3, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidStepIndex)

	_, err = m.ReorderField(doc, 0, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidFieldIndex)

	_, err = m.ReorderField(doc, 0, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidFieldIndex)
}

func TestSteps(t *testing.T) {
	m, _ := newTestModel()
	doc := m.CreateDocument()

	doc, s := m.AddStep(doc, "")
	assert.Equal(t, "Step 2", s.Title)
	doc, _ = m.AddStep(doc, "Payment")
	require.Len(t, doc.Steps, 3)

	title := "Contact"
	doc, err := m.UpdateStep(doc, 1, StepPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Contact", doc.Steps[1].Title)

	_, err = m.UpdateStep(doc, 5, StepPatch{Title: &title})
	assert.ErrorIs(t, err, ErrInvalidStepIndex)

	doc, err = m.SelectStep(doc, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.CurrentStepIndex)

	_, err = m.SelectStep(doc, 3)
	assert.ErrorIs(t, err, ErrInvalidStepIndex)
}

func TestDeleteStep(t *testing.T) {
	m, _ := newTestModel()
	doc := m.CreateDocument()
	doc, _ = m.AddStep(doc, "B")
	doc, _ = m.AddStep(doc, "C")
	doc, err := m.SelectStep(doc, 2)
	require.NoError(t, err)

	out, err := m.DeleteStep(doc, 2)
	require.NoError(t, err)
	assert.Len(t, out.Steps, 2)
	assert.Equal(t, 1, out.CurrentStepIndex, "cursor stays in range")

	out, err = m.DeleteStep(out, 0)
	require.NoError(t, err)
	assert.Equal(t, "B", out.Steps[0].Title)
	assert.Equal(t, 0, out.CurrentStepIndex)

	_, err = m.DeleteStep(out, 0)
	assert.ErrorIs(t, err, ErrLastStep)
}

func TestUpdateMeta(t *testing.T) {
	m, _ := newTestModel()
	doc := docWithFields(t, m, 1)
	title, desc := "Feedback", "Tell us"

	out := m.UpdateMeta(doc, MetaPatch{Title: &title, Description: &desc})
	assert.Equal(t, "Feedback", out.Title)
	assert.Equal(t, "Tell us", out.Description)
	assert.Equal(t, doc.ID, out.ID)
	assert.Equal(t, doc.Steps, out.Steps)
	assert.Equal(t, "Untitled Form", doc.Title)
}

func TestPublish(t *testing.T) {
	m, c := newTestModel()
	doc := m.CreateDocument()
	c.Advance(time.Hour)

	out := m.Publish(doc)
	assert.True(t, out.IsPublished)
	assert.Equal(t, epoch.Add(time.Hour), out.UpdatedAt)
	assert.False(t, doc.IsPublished)
}

func TestAppendResponse(t *testing.T) {
	m, c := newTestModel()
	doc := m.CreateDocument()
	c.Advance(time.Minute)

	data := map[string]any{"f1": "hello", "f2": true}
	out, sub := m.AppendResponse(doc, data)

	require.Len(t, out.Responses, 1)
	assert.Empty(t, doc.Responses)
	assert.Equal(t, sub, out.Responses[0])
	assert.Equal(t, "hello", sub.Data["f1"])
	assert.Equal(t, epoch.Add(time.Minute), sub.SubmittedAt)

	data["f1"] = "changed"
	assert.Equal(t, "hello", out.Responses[0].Data["f1"], "record is not aliased to caller data")

	out2, sub2 := m.AppendResponse(out, nil)
	assert.Len(t, out2.Responses, 2)
	assert.NotEqual(t, sub.ID, sub2.ID)
	assert.NotNil(t, sub2.Data)
}
