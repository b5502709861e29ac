// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dacolabs/formcraft/internal/builder"
	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
)

func newFieldsTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the field types of the palette",
		Example: `  # List field types
  formcraft fields types`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TYPE\tNAME\tDEFAULT LABEL")
			for _, d := range catalog.List() {
				_, _ = fmt.Fprintf(w, "%s\t%s %s\t%s\n", d.Type, d.Icon, d.Label, d.Defaults.Label)
			}
			return w.Flush()
		},
	}
}

type fieldsListOptions struct {
	step int
}

func newFieldsListCmd() *cobra.Command {
	opts := &fieldsListOptions{}

	cmd := &cobra.Command{
		Use:   "list FORM_ID",
		Short: "List the fields of a form",
		Args:  cobra.ExactArgs(1),
		Example: `  # All fields
  formcraft fields list form_1234

  # Fields of the second step
  formcraft fields list form_1234 --step 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			doc, err := fc.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("form %q: %w", args[0], err)
			}
			if opts.step == 0 {
				return writeFields(cmd.OutOrStdout(), doc.Fields())
			}
			idx := opts.step - 1
			if idx < 0 || idx >= len(doc.Steps) {
				return fmt.Errorf("%w: step %d of %d", form.ErrInvalidStepIndex, opts.step, len(doc.Steps))
			}
			return writeFields(cmd.OutOrStdout(), doc.Steps[idx].Fields)
		},
	}

	cmd.Flags().IntVarP(&opts.step, "step", "s", 0, "Step number (1-based); all steps when omitted")

	return cmd
}

// fieldFlags are the field settings accepted on the command line. Bounds are
// strings so that an empty value clears them.
type fieldFlags struct {
	label       string
	required    bool
	placeholder string
	help        string
	options     []string
	rows        string
	minLength   string
	maxLength   string
	min         string
	max         string
}

func (ff *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ff.label, "label", "l", "", "Field label")
	cmd.Flags().BoolVarP(&ff.required, "required", "r", false, "Field must be answered")
	cmd.Flags().StringVar(&ff.placeholder, "placeholder", "", "Placeholder text")
	cmd.Flags().StringVar(&ff.help, "help-text", "", "Help text shown under the field")
	cmd.Flags().StringSliceVar(&ff.options, "options", nil, "Dropdown options, comma-separated")
	cmd.Flags().StringVar(&ff.rows, "rows", "", "Textarea rows")
	cmd.Flags().StringVar(&ff.minLength, "min-length", "", "Minimum length (empty clears)")
	cmd.Flags().StringVar(&ff.maxLength, "max-length", "", "Maximum length (empty clears)")
	cmd.Flags().StringVar(&ff.min, "min", "", "Minimum number (empty clears)")
	cmd.Flags().StringVar(&ff.max, "max", "", "Maximum number (empty clears)")
}

// patch returns the changes the flags set on cmd make to f.
func (ff *fieldFlags) patch(cmd *cobra.Command, f model.Field) (form.FieldPatch, error) {
	s := prompts.NewFieldSettings(f)
	changed := cmd.Flags().Changed
	if changed("label") {
		s.Label = ff.label
	}
	if changed("required") {
		s.Required = ff.required
	}
	if changed("placeholder") {
		s.Placeholder = ff.placeholder
	}
	if changed("help-text") {
		s.HelpText = ff.help
	}
	if changed("options") {
		s.Options = strings.Join(ff.options, "\n")
	}
	if changed("rows") {
		s.Rows = ff.rows
	}
	if changed("min-length") {
		s.MinLength = ff.minLength
	}
	if changed("max-length") {
		s.MaxLength = ff.maxLength
	}
	if changed("min") {
		s.Min = ff.min
	}
	if changed("max") {
		s.Max = ff.max
	}
	return s.Patch(f)
}

type fieldsAddOptions struct {
	fieldFlags
	typ  string
	step int
}

func newFieldsAddCmd() *cobra.Command {
	opts := &fieldsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add FORM_ID",
		Short: "Add a field from the palette",
		Long: fmt.Sprintf(`Add a field to the end of a step. The field starts with the defaults of
its type; any settings flags are applied on top.

Field types: %s`, strings.Join(fieldTypes(), ", ")),
		Args: cobra.ExactArgs(1),
		Example: `  # Interactive type selection
  formcraft fields add form_1234

  # A required email field on step 2
  formcraft fields add form_1234 --type email --step 2 --label "Work email" --required

  # A dropdown
  formcraft fields add form_1234 --type dropdown --options Red,Green,Blue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFieldsAdd(cmd, fc, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typ, "type", "t", "", "Field type")
	cmd.Flags().IntVarP(&opts.step, "step", "s", 0, "Step number (1-based); the form's current step when omitted")
	opts.register(cmd)

	return cmd
}

func fieldTypes() []string {
	types := catalog.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func runFieldsAdd(cmd *cobra.Command, fc *session.Context, id string, opts *fieldsAddOptions) error {
	var added model.Field
	err := editForm(cmd, fc, id, func(b *builder.Session) error {
		typ := model.FieldType(opts.typ)
		if opts.typ == "" {
			if err := prompts.RunPaletteSelect(theme(cmd.Context(), fc), &typ); err != nil {
				return err
			}
		}
		defaults, err := catalog.Defaults(typ)
		if err != nil {
			return err
		}
		p, err := opts.patch(cmd, defaults)
		if err != nil {
			return err
		}

		doc := b.Document()
		if err := b.SelectStep(stepIndex(opts.step, doc.CurrentStepIndex)); err != nil {
			return err
		}
		at := len(b.Document().CurrentStep().Fields)
		if err := b.Drop(paletteDrop(typ, at)); err != nil {
			return err
		}
		f, ok := b.Selected()
		if !ok {
			return fmt.Errorf("field of type %s was not added", typ)
		}
		defer b.Deselect()

		if err := b.UpdateField(f.ID, p); err != nil {
			return err
		}
		added, _ = b.Selected()
		return nil
	})
	if err != nil {
		return err
	}
	fc.Logger.Info("field added", "form", id, "field", added.ID, "type", added.Type)

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Field", Value: added.ID},
		{Label: "Type", Value: string(added.Type)},
		{Label: "Label", Value: added.Label},
	}, "Field added")
	return nil
}

func newFieldsUpdateCmd() *cobra.Command {
	opts := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "update FORM_ID FIELD_ID",
		Short: "Change the settings of a field",
		Long: `Change the settings of a field. Only the flags given are changed; settings
that do not apply to the field's type are ignored. Without flags the settings
panel opens.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Interactive settings panel
  formcraft fields update form_1234 3f2a...

  # Make a field required and limit its length
  formcraft fields update form_1234 3f2a... --required --max-length 200

  # Remove the length limit
  formcraft fields update form_1234 3f2a... --max-length ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFieldsUpdate(cmd, fc, args[0], args[1], opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func runFieldsUpdate(cmd *cobra.Command, fc *session.Context, id, fieldID string, opts *fieldFlags) error {
	return editForm(cmd, fc, id, func(b *builder.Session) error {
		if !b.Select(fieldID) {
			return fmt.Errorf("field %q not found in form %q", fieldID, id)
		}
		defer b.Deselect()
		f, _ := b.Selected()

		var p form.FieldPatch
		if cmd.Flags().NFlag() == 0 {
			settings := prompts.NewFieldSettings(f)
			if err := prompts.RunFieldSettingsForm(theme(cmd.Context(), fc), f, &settings); err != nil {
				return err
			}
			var err error
			if p, err = settings.Patch(f); err != nil {
				return err
			}
		} else {
			var err error
			if p, err = opts.patch(cmd, f); err != nil {
				return err
			}
		}
		if err := b.UpdateField(fieldID, p); err != nil {
			return err
		}
		fc.Logger.Info("field updated", "form", id, "field", fieldID)
		return nil
	})
}

func newFieldsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove FORM_ID FIELD_ID",
		Short: "Remove a field",
		Args:  cobra.ExactArgs(2),
		Example: `  # Remove a field
  formcraft fields remove form_1234 3f2a...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id, fieldID := args[0], args[1]
			err = editForm(cmd, fc, id, func(b *builder.Session) error {
				if _, _, ok := form.FindField(b.Document(), fieldID); !ok {
					return fmt.Errorf("field %q not found in form %q", fieldID, id)
				}
				return b.DeleteField(fieldID)
			})
			if err != nil {
				return err
			}
			prompts.PrintResult([]prompts.ResultField{{Label: "Removed", Value: fieldID}}, "")
			return nil
		},
	}
}

type fieldsMoveOptions struct {
	to int
}

func newFieldsMoveCmd() *cobra.Command {
	opts := &fieldsMoveOptions{}

	cmd := &cobra.Command{
		Use:   "move FORM_ID FIELD_ID",
		Short: "Move a field to another position within its step",
		Args:  cobra.ExactArgs(2),
		Example: `  # Make a field the first of its step
  formcraft fields move form_1234 3f2a... --to 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id, fieldID := args[0], args[1]
			return editForm(cmd, fc, id, func(b *builder.Session) error {
				step, from, ok := form.FindField(b.Document(), fieldID)
				if !ok {
					return fmt.Errorf("field %q not found in form %q", fieldID, id)
				}
				if err := b.SelectStep(step); err != nil {
					return err
				}
				return b.Drop(canvasDrop(fieldID, from, opts.to-1))
			})
		},
	}

	cmd.Flags().IntVar(&opts.to, "to", 0, "New position (1-based)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
