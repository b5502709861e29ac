// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/model"
)

// ErrNoForms is returned when a form picker has nothing to offer.
var ErrNoForms = errors.New("no forms found (create one with 'formcraft forms new')")

// FormOptions lists documents for a picker, published ones marked.
func FormOptions(docs []model.Document) []huh.Option[string] {
	opts := make([]huh.Option[string], len(docs))
	for i, d := range docs {
		label := d.Title
		if d.IsPublished {
			label += " (published)"
		}
		opts[i] = huh.NewOption(fmt.Sprintf("%s  %s", label, d.ID), d.ID)
	}
	return opts
}

// RunFormSelect asks for one of docs and stores its id in value.
func RunFormSelect(theme *huh.Theme, title string, docs []model.Document, value *string) error {
	if len(docs) == 0 {
		return ErrNoForms
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(FormOptions(docs)...).
				Value(value),
		),
	).WithTheme(theme).Run()
}

// ExportFormatSelect returns a select field for choosing an export format.
func ExportFormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Export format").
		Options(options...).
		Value(value)
}

// RunTemplateSelect asks for a template id. An empty id means a blank form.
func RunTemplateSelect(theme *huh.Theme, templates []model.Template, value *string) error {
	opts := []huh.Option[string]{huh.NewOption("Blank form", "")}
	for _, t := range templates {
		opts = append(opts, huh.NewOption(t.Name+": "+t.Description, t.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start from").
				Options(opts...).
				Value(value),
		),
	).WithTheme(theme).Run()
}
