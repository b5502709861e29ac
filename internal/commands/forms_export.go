// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/export"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
)

type formsExportOptions struct {
	format string
	output string
}

func newFormsExportCmd(exporters export.Register) *cobra.Command {
	opts := &formsExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [FORM_ID]",
		Short: "Export a form to a file",
		Long: fmt.Sprintf(`Export a form to a file named after its id.

Available formats: %s`, strings.Join(exporters.Available(), ", ")),
		Args: cobra.MaximumNArgs(1),
		Example: `  # Interactive mode
  formcraft forms export

  # Download as JSON
  formcraft forms export form_1234 --format json

  # JSON Schema of the responses, to stdout
  formcraft forms export form_1234 --format jsonschema --output -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runFormsExport(cmd, fc, exporters, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(exporters.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Output directory, or - for stdout")

	return cmd
}

func runFormsExport(cmd *cobra.Command, fc *session.Context, exporters export.Register, args []string, opts *formsExportOptions) error {
	id, err := formID(cmd, fc, args, "Form to export")
	if err != nil {
		return err
	}
	doc, err := fc.Store.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("form %q: %w", id, err)
	}

	format := opts.format
	if format == "" {
		err := huh.NewForm(
			huh.NewGroup(prompts.ExportFormatSelect(&format, exporters.Available())),
		).WithTheme(theme(cmd.Context(), fc)).Run()
		if err != nil {
			return err
		}
	}

	e, err := exporters.Get(format)
	if err != nil {
		return err
	}
	data, err := e.Export(doc)
	if err != nil {
		return fmt.Errorf("failed to export form %q as %s: %w", id, format, err)
	}

	if opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return writeExport(cmd, fc, opts.output, export.FileName(doc, e), data)
}

func writeExport(cmd *cobra.Command, fc *session.Context, dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outFile := filepath.Join(dir, name)
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	fc.Logger.Info("exported", "file", outFile, "bytes", len(data))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), outFile)
	return nil
}
