// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
)

func newFormsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all forms",
		Long: `List all forms in the project store.
Displays ids, titles, step and field counts, responses and publication status.`,
		Example: `  # List forms
  formcraft forms list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			docs, err := fc.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			return runFormsList(cmd.OutOrStdout(), docs)
		},
	}
	return cmd
}

func runFormsList(out io.Writer, docs []model.Document) error {
	if len(docs) == 0 {
		_, _ = fmt.Fprintln(out, "No forms yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tSTEPS\tFIELDS\tRESPONSES\tSTATUS\tUPDATED")
	for _, d := range docs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			d.ID, truncate(d.Title, 40), len(d.Steps), len(d.Fields()), len(d.Responses),
			status(d), d.UpdatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func status(d model.Document) string {
	if d.IsPublished {
		return "published"
	}
	return "draft"
}

func newFormsTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the ready-made form templates",
		Example: `  # List templates
  formcraft forms templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTEPS\tDESCRIPTION")
			for _, t := range catalog.Templates() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.ID, t.Name, len(t.Steps), t.Description)
			}
			return w.Flush()
		},
	}
}

type formsNewOptions struct {
	title          string
	description    string
	template       string
	nonInteractive bool
}

func newFormsNewCmd() *cobra.Command {
	opts := &formsNewOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a form",
		Long: `Create a new form, blank or seeded from a template.
A blank form starts with one empty step.`,
		Example: `  # Interactive mode
  formcraft forms new

  # From a template
  formcraft forms new --template contact-us --non-interactive

  # Blank with a title
  formcraft forms new --title "Event signup" --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFormsNew(cmd, fc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Form title")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Form description")
	cmd.Flags().StringVar(&opts.template, "template", "", "Template id (see 'formcraft forms templates')")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runFormsNew(cmd *cobra.Command, fc *session.Context, opts *formsNewOptions) error {
	ctx := cmd.Context()

	if !opts.nonInteractive {
		th := theme(ctx, fc)
		if !cmd.Flags().Changed("template") {
			if err := prompts.RunTemplateSelect(th, catalog.Templates(), &opts.template); err != nil {
				return err
			}
		}
		if opts.title == "" {
			opts.title = "Untitled Form"
			if opts.template != "" {
				if t, err := catalog.Template(opts.template); err == nil {
					opts.title = t.Name
				}
			}
		}
		if err := prompts.RunMetaForm(th, &opts.title, &opts.description); err != nil {
			return err
		}
	}

	m := form.New()
	var doc model.Document
	if opts.template != "" {
		t, err := catalog.Template(opts.template)
		if err != nil {
			return err
		}
		doc = m.FromTemplate(t)
	} else {
		doc = m.CreateDocument()
	}

	var meta form.MetaPatch
	if opts.title != "" {
		meta.Title = &opts.title
	}
	if opts.description != "" {
		meta.Description = &opts.description
	}
	doc = m.UpdateMeta(doc, meta)

	if err := fc.Store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}
	fc.Logger.Info("form created", "form", doc.ID, "template", opts.template)

	prompts.PrintResult([]prompts.ResultField{
		{Label: "ID", Value: doc.ID},
		{Label: "Title", Value: doc.Title},
		{Label: "Steps", Value: fmt.Sprint(len(doc.Steps))},
	}, "Form created")
	return nil
}

type formsDeleteOptions struct {
	yes bool
}

func newFormsDeleteCmd() *cobra.Command {
	opts := &formsDeleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete [FORM_ID]",
		Short: "Delete a form and its responses",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Interactive mode
  formcraft forms delete

  # Without confirmation
  formcraft forms delete form_1234 --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFormsDelete(cmd, fc, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func runFormsDelete(cmd *cobra.Command, fc *session.Context, args []string, opts *formsDeleteOptions) error {
	ctx := cmd.Context()
	id, err := formID(cmd, fc, args, "Form to delete")
	if err != nil {
		return err
	}
	doc, err := fc.Store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("form %q: %w", id, err)
	}

	if !opts.yes {
		ok, err := prompts.Confirm(theme(ctx, fc),
			fmt.Sprintf("Delete %q and its %d response(s)?", doc.Title, len(doc.Responses)))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := fc.Store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	fc.Logger.Info("form deleted", "form", id)
	prompts.PrintResult([]prompts.ResultField{{Label: "Deleted", Value: id}}, "")
	return nil
}
