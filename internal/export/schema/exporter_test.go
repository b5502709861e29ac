// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/dacolabs/formcraft/internal/export/exporttest"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	s := Build(exporttest.Document())

	assert.Equal(t, Draft, s.Schema)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, "Event Registration", s.Title)
	assert.Equal(t, []string{"name", "email", "terms"}, s.Required)
	require.Len(t, s.Properties, 8)

	name := s.Properties["name"]
	assert.Equal(t, "string", name.Type)
	assert.Equal(t, "Full Name", name.Title)
	assert.Equal(t, notBlank, name.Pattern)
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 2, *name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, 40, *name.MaxLength)

	email := s.Properties["email"]
	assert.Equal(t, "email", email.Format)
	assert.Equal(t, "We send the ticket here", email.Description)

	assert.Empty(t, email.AnyOf, "required email has no blank alternative")

	day := s.Properties["day"]
	assert.Empty(t, day.Format)
	require.Len(t, day.AnyOf, 2)
	assert.Equal(t, "date", day.AnyOf[0].Format)
	require.NotNil(t, day.AnyOf[1].Const)
	assert.Equal(t, "", *day.AnyOf[1].Const)

	assert.Equal(t, []any{"Go", "Rust", ""}, s.Properties["track"].Enum, "a skipped dropdown is stored blank")
	assert.Empty(t, s.Properties["phone"].Pattern, "optional fields accept blanks")

	guests := s.Properties["guests"]
	assert.Equal(t, []string{"number", "string"}, guests.Types)
	require.NotNil(t, guests.Minimum)
	assert.Equal(t, 0.0, *guests.Minimum)
	require.NotNil(t, guests.Maximum)
	assert.Equal(t, 3.5, *guests.Maximum)
	pattern := regexp.MustCompile(guests.Pattern)
	for _, v := range []string{"2", " -1.5 ", "1e3", ".5", ""} {
		assert.True(t, pattern.MatchString(v), v)
	}
	for _, v := range []string{"abc", "5abc", "NaN"} {
		assert.False(t, pattern.MatchString(v), v)
	}

	terms := s.Properties["terms"]
	assert.Equal(t, "boolean", terms.Type)
	assert.Equal(t, []any{true}, terms.Enum)
}

func TestBuild_ZeroLengthBoundsAreUnset(t *testing.T) {
	zero := 0
	doc := model.Document{
		ID: "form_z",
		Steps: []model.Step{{Fields: []model.Field{
			{ID: "t", Type: model.FieldText, Label: "T", MinLength: &zero, MaxLength: &zero},
		}}},
	}

	s := Build(doc)
	assert.Nil(t, s.Properties["t"].MinLength)
	assert.Nil(t, s.Properties["t"].MaxLength)
	assert.Empty(t, s.Required)
}

func TestBuild_RequiredNumber(t *testing.T) {
	doc := model.Document{
		ID: "form_n",
		Steps: []model.Step{{Fields: []model.Field{
			{ID: "n", Type: model.FieldNumber, Label: "N", Required: true},
			{ID: "d", Type: model.FieldDropdown, Label: "D", Required: true, Options: []string{"A"}},
		}}},
	}

	s := Build(doc)
	pattern := regexp.MustCompile(s.Properties["n"].Pattern)
	assert.True(t, pattern.MatchString("42"))
	assert.False(t, pattern.MatchString(""))
	assert.Equal(t, []any{"A"}, s.Properties["d"].Enum)
}

func TestExport(t *testing.T) {
	out, err := (&Exporter{}).Export(exporttest.Document())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, Draft, raw["$schema"])
	assert.Equal(t, "form_sample", raw["$id"])

	props, ok := raw["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "guests")
}

func TestExporter_Metadata(t *testing.T) {
	e := &Exporter{}
	assert.Equal(t, "jsonschema", e.Name())
	assert.Equal(t, ".schema.json", e.FileExtension())
}
