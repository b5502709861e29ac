// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docjson

import (
	"encoding/json"
	"testing"

	"github.com/dacolabs/formcraft/internal/export/exporttest"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	doc := exporttest.Document()

	out, err := (&Exporter{}).Export(doc)
	require.NoError(t, err)

	result := string(out)
	assert.Contains(t, result, `"id": "form_sample"`)
	assert.Contains(t, result, `"isPublished": true`)
	assert.Contains(t, result, `"currentStepIndex": 0`)
	assert.Contains(t, result, `"minLength": 2`)

	var back model.Document
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, doc.Steps, back.Steps)
	assert.Len(t, back.Responses, 2)
}

func TestExporter_Metadata(t *testing.T) {
	e := &Exporter{}
	assert.Equal(t, "json", e.Name())
	assert.Equal(t, ".json", e.FileExtension())
}
