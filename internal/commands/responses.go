// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dacolabs/formcraft/internal/export"
	"github.com/dacolabs/formcraft/internal/export/responses"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
)

func newResponsesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FORM_ID",
		Short: "List the responses of a form",
		Args:  cobra.ExactArgs(1),
		Example: `  # List responses
  formcraft responses list form_1234`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			doc, err := fc.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("form %q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			if len(doc.Responses) == 0 {
				_, _ = fmt.Fprintln(out, "No responses yet.")
				return nil
			}

			fields := doc.Fields()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprint(w, "ID\tSUBMITTED")
			for _, f := range fields {
				_, _ = fmt.Fprintf(w, "\t%s", truncate(f.Label, 20))
			}
			_, _ = fmt.Fprintln(w)
			for _, r := range doc.Responses {
				_, _ = fmt.Fprintf(w, "%s\t%s", r.ID, r.SubmittedAt.Local().Format(time.DateTime))
				for _, f := range fields {
					_, _ = fmt.Fprintf(w, "\t%s", truncate(responses.Cell(r.Data[f.ID]), 20))
				}
				_, _ = fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}

type responsesExportOptions struct {
	output string
}

func newResponsesExportCmd() *cobra.Command {
	opts := &responsesExportOptions{}

	cmd := &cobra.Command{
		Use:   "export FORM_ID",
		Short: "Export the responses of a form as CSV",
		Args:  cobra.ExactArgs(1),
		Example: `  # Write <form id>.csv to the current directory
  formcraft responses export form_1234

  # To stdout
  formcraft responses export form_1234 -o -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			doc, err := fc.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("form %q: %w", args[0], err)
			}
			e := &responses.Exporter{}
			data, err := e.Export(doc)
			if err != nil {
				return err
			}
			if opts.output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return writeExport(cmd, fc, opts.output, export.FileName(doc, e), data)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Output directory, or - for stdout")

	return cmd
}
