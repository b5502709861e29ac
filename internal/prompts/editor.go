// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/model"
)

// Editor menu actions.
const (
	EditAddField    = "add-field"
	EditField       = "edit-field"
	EditMoveField   = "move-field"
	EditRemoveField = "remove-field"
	EditAddStep     = "add-step"
	EditRenameStep  = "rename-step"
	EditRemoveStep  = "remove-step"
	EditSwitchStep  = "switch-step"
	EditMeta        = "meta"
	EditPublish     = "publish"
	EditDone        = "done"
)

// EditorActions returns the editor menu entries available for doc.
func EditorActions(doc model.Document) []huh.Option[string] {
	opts := []huh.Option[string]{
		huh.NewOption("Add field", EditAddField),
	}
	if len(doc.CurrentStep().Fields) > 0 {
		opts = append(opts,
			huh.NewOption("Edit field", EditField),
			huh.NewOption("Move field", EditMoveField),
			huh.NewOption("Remove field", EditRemoveField),
		)
	}
	opts = append(opts,
		huh.NewOption("Add step", EditAddStep),
		huh.NewOption("Rename step", EditRenameStep),
	)
	if len(doc.Steps) > 1 {
		opts = append(opts,
			huh.NewOption("Remove step", EditRemoveStep),
			huh.NewOption("Switch step", EditSwitchStep),
		)
	}
	opts = append(opts,
		huh.NewOption("Edit title and description", EditMeta),
		huh.NewOption("Publish", EditPublish),
		huh.NewOption("Done", EditDone),
	)
	return opts
}

// RunEditorMenu asks for the next editing action.
func RunEditorMenu(theme *huh.Theme, doc model.Document, action *string) error {
	step := doc.CurrentStep()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%s: %s (step %d of %d, %d fields)",
					doc.Title, step.Title, doc.CurrentStepIndex+1, len(doc.Steps), len(step.Fields))).
				Options(EditorActions(doc)...).
				Value(action),
		),
	).WithTheme(theme).Run()
}

// PaletteOptions lists the field types in palette order.
func PaletteOptions() []huh.Option[model.FieldType] {
	defs := catalog.List()
	opts := make([]huh.Option[model.FieldType], len(defs))
	for i, d := range defs {
		opts[i] = huh.NewOption(d.Icon+" "+d.Label, d.Type)
	}
	return opts
}

// RunPaletteSelect asks for a field type to add.
func RunPaletteSelect(theme *huh.Theme, typ *model.FieldType) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.FieldType]().
				Title("Field type").
				Options(PaletteOptions()...).
				Value(typ),
		),
	).WithTheme(theme).Run()
}

// FieldOptions lists the fields of a step by position.
func FieldOptions(step model.Step) []huh.Option[int] {
	opts := make([]huh.Option[int], len(step.Fields))
	for i, f := range step.Fields {
		opts[i] = huh.NewOption(fmt.Sprintf("%d. %s (%s)", i+1, f.Label, f.Type), i)
	}
	return opts
}

// RunFieldSelect asks for a field of step.
func RunFieldSelect(theme *huh.Theme, title string, step model.Step, index *int) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(FieldOptions(step)...).
				Value(index),
		),
	).WithTheme(theme).Run()
}

// RunMoveField asks for a field and its new position.
func RunMoveField(theme *huh.Theme, step model.Step, from, to *int) error {
	positions := make([]huh.Option[int], len(step.Fields))
	for i := range step.Fields {
		positions[i] = huh.NewOption(strconv.Itoa(i+1), i)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Field to move").
				Options(FieldOptions(step)...).
				Value(from),
			huh.NewSelect[int]().
				Title("New position").
				Options(positions...).
				Value(to),
		),
	).WithTheme(theme).Run()
}

// StepOptions lists the steps of doc by position.
func StepOptions(doc model.Document) []huh.Option[int] {
	opts := make([]huh.Option[int], len(doc.Steps))
	for i, s := range doc.Steps {
		opts[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, s.Title), i)
	}
	return opts
}

// RunStepSelect asks for a step of doc.
func RunStepSelect(theme *huh.Theme, title string, doc model.Document, index *int) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(StepOptions(doc)...).
				Value(index),
		),
	).WithTheme(theme).Run()
}

// RunStepTitle asks for a step title.
func RunStepTitle(theme *huh.Theme, title *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Step title").
				Validate(requiredValidator("step title")).
				Value(title),
		),
	).WithTheme(theme).Run()
}

// RunMetaForm edits a form's title and description.
func RunMetaForm(theme *huh.Theme, title, description *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Form title").
				Validate(requiredValidator("form title")).
				Value(title),
			huh.NewText().
				Title("Description").
				Value(description),
		),
	).WithTheme(theme).Run()
}
