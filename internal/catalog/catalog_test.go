// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"testing"
	"time"

	"github.com/dacolabs/formcraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_PaletteOrder(t *testing.T) {
	want := []model.FieldType{
		model.FieldText,
		model.FieldEmail,
		model.FieldPhone,
		model.FieldTextarea,
		model.FieldDropdown,
		model.FieldCheckbox,
		model.FieldDate,
		model.FieldNumber,
	}
	assert.Equal(t, want, Types())

	defs := List()
	require.Len(t, defs, len(want))
	for i, d := range defs {
		assert.Equal(t, want[i], d.Type)
		assert.NotEmpty(t, d.Label)
		assert.NotEmpty(t, d.Icon)
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		typ       model.FieldType
		wantLabel string
		check     func(t *testing.T, f model.Field)
	}{
		{model.FieldText, "Text Field", func(t *testing.T, f model.Field) {
			assert.Equal(t, "Enter text...", f.Placeholder)
		}},
		{model.FieldTextarea, "Message", func(t *testing.T, f model.Field) {
			assert.Equal(t, 4, f.Rows)
		}},
		{model.FieldDropdown, "Select Option", func(t *testing.T, f model.Field) {
			assert.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, f.Options)
		}},
		{model.FieldCheckbox, "Checkbox", nil},
		{model.FieldDate, "Date", nil},
		{model.FieldNumber, "Number", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			f, err := Defaults(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, f.Type)
			assert.Equal(t, tt.wantLabel, f.Label)
			assert.False(t, f.Required)
			assert.Empty(t, f.ID)
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

func TestDefaults_UnknownType(t *testing.T) {
	_, err := Defaults("signature")
	assert.ErrorIs(t, err, ErrUnknownFieldType)
	assert.False(t, Known("signature"))
	assert.True(t, Known(model.FieldEmail))
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	f, err := Defaults(model.FieldDropdown)
	require.NoError(t, err)
	f.Options[0] = "changed"

	again, err := Defaults(model.FieldDropdown)
	require.NoError(t, err)
	assert.Equal(t, "Option 1", again.Options[0])
}

func TestTemplates(t *testing.T) {
	all := Templates()
	require.Len(t, all, 2)
	assert.Equal(t, "contact-us", all[0].ID)
	assert.Equal(t, "survey", all[1].ID)

	survey, err := Template("survey")
	require.NoError(t, err)
	assert.Len(t, survey.Steps, 2)

	_, err = Template("missing")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestDemo(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := Demo(now)

	assert.Equal(t, DemoID, doc.ID)
	assert.True(t, doc.IsPublished)
	assert.Equal(t, "Contact Us Form", doc.Title)
	assert.Len(t, doc.Steps, 2)
	assert.Equal(t, now, doc.CreatedAt)
	assert.Empty(t, doc.Responses)

	doc.Steps[0].Fields[0].Label = "mutated"
	assert.Equal(t, "Full Name", Demo(now).Steps[0].Fields[0].Label)
}
