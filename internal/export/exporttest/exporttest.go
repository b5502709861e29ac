// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package exporttest provides a sample document for exporter tests.
package exporttest

import (
	"time"

	"github.com/dacolabs/formcraft/internal/model"
)

// Epoch is the creation time of the sample document.
var Epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Document returns a published two-step form with two responses.
func Document() model.Document {
	return model.Document{
		ID:          "form_sample",
		Title:       "Event Registration",
		Description: "Sign up for the spring meetup",
		Steps: []model.Step{
			{
				ID:    "s1",
				Title: "About you",
				Fields: []model.Field{
					{ID: "name", Type: model.FieldText, Label: "Full Name", Required: true, MinLength: intPtr(2), MaxLength: intPtr(40)},
					{ID: "email", Type: model.FieldEmail, Label: "Email", Required: true, HelpText: "We send the ticket here"},
					{ID: "phone", Type: model.FieldPhone, Label: "Phone"},
				},
			},
			{
				ID:    "s2",
				Title: "Preferences",
				Fields: []model.Field{
					{ID: "track", Type: model.FieldDropdown, Label: "Track", Options: []string{"Go", "Rust"}},
					{ID: "guests", Type: model.FieldNumber, Label: "Guests", Min: floatPtr(0), Max: floatPtr(3.5)},
					{ID: "day", Type: model.FieldDate, Label: "Day"},
					{ID: "notes", Type: model.FieldTextarea, Label: "Notes", Rows: 4},
					{ID: "terms", Type: model.FieldCheckbox, Label: "Accept terms", Required: true},
				},
			},
		},
		CreatedAt:   Epoch,
		UpdatedAt:   Epoch.Add(time.Hour),
		IsPublished: true,
		Responses: []model.Submission{
			{
				ID:          "r1",
				SubmittedAt: Epoch.Add(2 * time.Hour),
				Data: map[string]any{
					"name": "Ada", "email": "ada@example.com", "track": "Go",
					"guests": "2", "terms": true, "notes": "line one, \"quoted\"",
				},
			},
			{
				ID:          "r2",
				SubmittedAt: Epoch.Add(3 * time.Hour),
				Data:        map[string]any{"name": "Linus", "email": "linus@example.com", "terms": true},
			},
		},
	}
}
