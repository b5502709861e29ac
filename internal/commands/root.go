// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/formcraft/internal/export"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/dacolabs/formcraft/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(exporters export.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formcraft",
		Short: "Build, publish and fill multi-step forms from the terminal",
		Long: `formcraft builds multi-step forms out of a palette of field types,
publishes them behind a share link and collects validated responses.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	registerFormsCmd(rootCmd, exporters)
	registerFieldsCmd(rootCmd)
	registerStepsCmd(rootCmd)
	registerResponsesCmd(rootCmd)
	registerProjectCmds(rootCmd)

	return rootCmd
}

// projectGroup returns a command whose subcommands run inside a loaded project.
func projectGroup(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		PersistentPreRunE:  session.PreRunLoad,
		PersistentPostRunE: session.PostRunClose,
	}
}

func registerFormsCmd(parent *cobra.Command, exporters export.Register) {
	cmd := projectGroup("forms", "Create, edit, publish and export forms")

	cmd.AddCommand(newFormsListCmd())
	cmd.AddCommand(newFormsNewCmd())
	cmd.AddCommand(newFormsDescribeCmd(exporters))
	cmd.AddCommand(newFormsDeleteCmd())
	cmd.AddCommand(newFormsPublishCmd())
	cmd.AddCommand(newFormsShareCmd())
	cmd.AddCommand(newFormsEditCmd())
	cmd.AddCommand(newFormsExportCmd(exporters))
	cmd.AddCommand(newFormsTemplatesCmd())

	parent.AddCommand(cmd)
}

func registerFieldsCmd(parent *cobra.Command) {
	cmd := projectGroup("fields", "Manage the fields of a form step")

	cmd.AddCommand(newFieldsTypesCmd())
	cmd.AddCommand(newFieldsListCmd())
	cmd.AddCommand(newFieldsAddCmd())
	cmd.AddCommand(newFieldsUpdateCmd())
	cmd.AddCommand(newFieldsRemoveCmd())
	cmd.AddCommand(newFieldsMoveCmd())

	parent.AddCommand(cmd)
}

func registerStepsCmd(parent *cobra.Command) {
	cmd := projectGroup("steps", "Manage the steps of a form")

	cmd.AddCommand(newStepsListCmd())
	cmd.AddCommand(newStepsAddCmd())
	cmd.AddCommand(newStepsRenameCmd())
	cmd.AddCommand(newStepsRemoveCmd())

	parent.AddCommand(cmd)
}

func registerResponsesCmd(parent *cobra.Command) {
	cmd := projectGroup("responses", "Inspect collected responses")

	cmd.AddCommand(newResponsesListCmd())
	cmd.AddCommand(newResponsesExportCmd())

	parent.AddCommand(cmd)
}

// registerProjectCmds adds the top-level commands that need a loaded project.
func registerProjectCmds(parent *cobra.Command) {
	for _, cmd := range []*cobra.Command{newFillCmd(), newPreviewCmd(), newThemeCmd()} {
		cmd.PersistentPreRunE = session.PreRunLoad
		cmd.PersistentPostRunE = session.PostRunClose
		parent.AddCommand(cmd)
	}
}
