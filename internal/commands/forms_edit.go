// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/builder"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
)

type formsEditOptions struct {
	fresh bool
}

func newFormsEditCmd() *cobra.Command {
	opts := &formsEditOptions{}

	cmd := &cobra.Command{
		Use:   "edit [FORM_ID]",
		Short: "Edit a form interactively",
		Long: `Open the form builder. Fields are picked from the palette and configured
in the settings panel; changes are saved automatically after a short pause.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Pick a form to edit
  formcraft forms edit

  # Start a new form in the builder
  formcraft forms edit --new`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id := ""
			if !opts.fresh {
				if id, err = formID(cmd, fc, args, "Form to edit"); err != nil {
					return err
				}
			}
			return editForm(cmd, fc, id, func(b *builder.Session) error {
				return runEditor(cmd, fc, b)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.fresh, "new", false, "Start a new form")

	return cmd
}

// paletteDrop is the gesture of dragging a palette entry onto the canvas.
func paletteDrop(typ model.FieldType, at int) builder.DragResult {
	return builder.DragResult{
		Source:      builder.Location{DroppableID: builder.ZonePalette},
		Destination: &builder.Location{DroppableID: builder.ZoneCanvas, Index: at},
		DraggableID: builder.PaletteDraggableID(typ),
	}
}

// canvasDrop is the gesture of moving a field within the canvas.
func canvasDrop(fieldID string, from, to int) builder.DragResult {
	return builder.DragResult{
		Source:      builder.Location{DroppableID: builder.ZoneCanvas, Index: from},
		Destination: &builder.Location{DroppableID: builder.ZoneCanvas, Index: to},
		DraggableID: fieldID,
	}
}

func runEditor(cmd *cobra.Command, fc *session.Context, b *builder.Session) error {
	ctx := cmd.Context()
	th := theme(ctx, fc)
	errOut := cmd.ErrOrStderr()

	for {
		if err := b.Err(); err != nil {
			_, _ = fmt.Fprintf(errOut, "autosave failed: %v\n", err)
		}

		doc := b.Document()
		step := doc.CurrentStep()
		action := prompts.EditDone
		if err := prompts.RunEditorMenu(th, doc, &action); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		err := editorAction(cmd, fc, th, b, doc, step, action)
		switch {
		case errors.Is(err, errEditorDone):
			return nil
		case errors.Is(err, huh.ErrUserAborted):
		case err != nil:
			_, _ = fmt.Fprintf(errOut, "error: %v\n", err)
		}
	}
}

var errEditorDone = errors.New("editor done")

func editorAction(cmd *cobra.Command, fc *session.Context, th *huh.Theme, b *builder.Session, doc model.Document, step model.Step, action string) error {
	switch action {
	case prompts.EditDone:
		return errEditorDone

	case prompts.EditAddField:
		typ := model.FieldText
		if err := prompts.RunPaletteSelect(th, &typ); err != nil {
			return err
		}
		if err := b.Drop(paletteDrop(typ, len(step.Fields))); err != nil {
			return err
		}
		f, ok := b.Selected()
		if !ok {
			return nil
		}
		return editFieldSettings(th, b, f)

	case prompts.EditField:
		idx := 0
		if err := prompts.RunFieldSelect(th, "Field to edit", step, &idx); err != nil {
			return err
		}
		b.Select(step.Fields[idx].ID)
		f, _ := b.Selected()
		return editFieldSettings(th, b, f)

	case prompts.EditMoveField:
		from, to := 0, 0
		if err := prompts.RunMoveField(th, step, &from, &to); err != nil {
			return err
		}
		return b.Drop(canvasDrop(step.Fields[from].ID, from, to))

	case prompts.EditRemoveField:
		idx := 0
		if err := prompts.RunFieldSelect(th, "Field to remove", step, &idx); err != nil {
			return err
		}
		return b.DeleteField(step.Fields[idx].ID)

	case prompts.EditAddStep:
		title := fmt.Sprintf("Step %d", len(doc.Steps)+1)
		if err := prompts.RunStepTitle(th, &title); err != nil {
			return err
		}
		if _, err := b.AddStep(title); err != nil {
			return err
		}
		return b.SelectStep(len(doc.Steps))

	case prompts.EditRenameStep:
		title := step.Title
		if err := prompts.RunStepTitle(th, &title); err != nil {
			return err
		}
		return b.UpdateStep(doc.CurrentStepIndex, form.StepPatch{Title: &title})

	case prompts.EditRemoveStep:
		idx := doc.CurrentStepIndex
		if err := prompts.RunStepSelect(th, "Step to remove", doc, &idx); err != nil {
			return err
		}
		return b.DeleteStep(idx)

	case prompts.EditSwitchStep:
		idx := doc.CurrentStepIndex
		if err := prompts.RunStepSelect(th, "Step to edit", doc, &idx); err != nil {
			return err
		}
		return b.SelectStep(idx)

	case prompts.EditMeta:
		title, description := doc.Title, doc.Description
		if err := prompts.RunMetaForm(th, &title, &description); err != nil {
			return err
		}
		return b.UpdateMeta(form.MetaPatch{Title: &title, Description: &description})

	case prompts.EditPublish:
		if err := b.Publish(cmd.Context()); err != nil {
			return err
		}
		link, err := b.ShareURL(fc.Config.Share.BaseURL)
		if err != nil {
			return err
		}
		prompts.PrintResult([]prompts.ResultField{{Label: "Share link", Value: link}}, "Form published")
	}
	return nil
}

func editFieldSettings(th *huh.Theme, b *builder.Session, f model.Field) error {
	settings := prompts.NewFieldSettings(f)
	if err := prompts.RunFieldSettingsForm(th, f, &settings); err != nil {
		return err
	}
	p, err := settings.Patch(f)
	if err != nil {
		return err
	}
	defer b.Deselect()
	return b.UpdateField(f.ID, p)
}
