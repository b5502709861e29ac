// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dacolabs/formcraft/internal/export"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/dacolabs/formcraft/internal/share"
	"github.com/spf13/cobra"
)

type formsDescribeOptions struct {
	output string
}

func newFormsDescribeCmd(exporters export.Register) *cobra.Command {
	opts := &formsDescribeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [FORM_ID]",
		Short: "Show the details of a form",
		Long: fmt.Sprintf(`Show a form's steps and fields.
With --output the form is printed in one of the export formats: %s`,
			strings.Join(exporters.Available(), ", ")),
		Args: cobra.MaximumNArgs(1),
		Example: `  # Describe a form
  formcraft forms describe form_1234

  # As YAML
  formcraft forms describe form_1234 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id, err := formID(cmd, fc, args, "Form to describe")
			if err != nil {
				return err
			}
			doc, err := fc.Store.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("form %q: %w", id, err)
			}
			if opts.output != "" {
				e, err := exporters.Get(opts.output)
				if err != nil {
					return err
				}
				data, err := e.Export(doc)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return runFormsDescribe(cmd.OutOrStdout(), doc, fc.Config.Share.BaseURL)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format")

	return cmd
}

func runFormsDescribe(out io.Writer, doc model.Document, baseURL string) error {
	_, _ = fmt.Fprintf(out, "%s (%s)\n", doc.Title, doc.ID)
	if doc.Description != "" {
		_, _ = fmt.Fprintln(out, doc.Description)
	}
	_, _ = fmt.Fprintf(out, "Status: %s, %d response(s)\n", status(doc), len(doc.Responses))
	if doc.IsPublished {
		if u, err := share.URL(baseURL, doc.ID); err == nil {
			_, _ = fmt.Fprintf(out, "Share link: %s\n", u)
		}
	}

	for i, step := range doc.Steps {
		_, _ = fmt.Fprintf(out, "\nStep %d: %s\n", i+1, step.Title)
		if len(step.Fields) == 0 {
			_, _ = fmt.Fprintln(out, "  (no fields)")
			continue
		}
		if err := writeFields(out, step.Fields); err != nil {
			return err
		}
	}
	return nil
}

func writeFields(out io.Writer, fields []model.Field) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "  #\tID\tTYPE\tLABEL\tREQUIRED")
	for i, f := range fields {
		req := "no"
		if f.Required {
			req = "yes"
		}
		_, _ = fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n", i+1, f.ID, f.Type, truncate(f.Label, 40), req)
	}
	return w.Flush()
}
