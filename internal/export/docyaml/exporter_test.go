// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docyaml

import (
	"testing"

	"github.com/dacolabs/formcraft/internal/export/exporttest"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExport(t *testing.T) {
	doc := exporttest.Document()

	out, err := (&Exporter{}).Export(doc)
	require.NoError(t, err)

	result := string(out)
	assert.Contains(t, result, "id: form_sample")
	assert.Contains(t, result, "title: Event Registration")
	assert.Contains(t, result, "  - id: s1")
	assert.Contains(t, result, "helpText: We send the ticket here")

	var back model.Document
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, doc.Steps, back.Steps)
	assert.True(t, back.IsPublished)
}

func TestExporter_Metadata(t *testing.T) {
	e := &Exporter{}
	assert.Equal(t, "yaml", e.Name())
	assert.Equal(t, ".yaml", e.FileExtension())
}
