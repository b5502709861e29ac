// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/dacolabs/formcraft/internal/builder"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
)

func newStepsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FORM_ID",
		Short: "List the steps of a form",
		Args:  cobra.ExactArgs(1),
		Example: `  # List steps
  formcraft steps list form_1234`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			doc, err := fc.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("form %q: %w", args[0], err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "#\tID\tTITLE\tFIELDS")
			for i, s := range doc.Steps {
				marker := ""
				if i == doc.CurrentStepIndex {
					marker = "*"
				}
				_, _ = fmt.Fprintf(w, "%d%s\t%s\t%s\t%d\n", i+1, marker, s.ID, truncate(s.Title, 40), len(s.Fields))
			}
			return w.Flush()
		},
	}
}

type stepsAddOptions struct {
	title string
}

func newStepsAddCmd() *cobra.Command {
	opts := &stepsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add FORM_ID",
		Short: "Append a step to a form",
		Args:  cobra.ExactArgs(1),
		Example: `  # Add a step named after its position
  formcraft steps add form_1234

  # Add a titled step
  formcraft steps add form_1234 --title "Preferences"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			var added string
			err = editForm(cmd, fc, args[0], func(b *builder.Session) error {
				st, err := b.AddStep(opts.title)
				added = st.Title
				return err
			})
			if err != nil {
				return err
			}
			prompts.PrintResult([]prompts.ResultField{{Label: "Step", Value: added}}, "Step added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Step title (defaults to \"Step N\")")

	return cmd
}

type stepsRenameOptions struct {
	step  int
	title string
}

func newStepsRenameCmd() *cobra.Command {
	opts := &stepsRenameOptions{}

	cmd := &cobra.Command{
		Use:   "rename FORM_ID",
		Short: "Rename a step",
		Args:  cobra.ExactArgs(1),
		Example: `  # Rename the second step
  formcraft steps rename form_1234 --step 2 --title "Contact details"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return editForm(cmd, fc, args[0], func(b *builder.Session) error {
				idx := stepIndex(opts.step, b.Document().CurrentStepIndex)
				return b.UpdateStep(idx, form.StepPatch{Title: &opts.title})
			})
		},
	}

	cmd.Flags().IntVarP(&opts.step, "step", "s", 0, "Step number (1-based); the form's current step when omitted")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "New title")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

type stepsRemoveOptions struct {
	step int
}

func newStepsRemoveCmd() *cobra.Command {
	opts := &stepsRemoveOptions{}

	cmd := &cobra.Command{
		Use:   "remove FORM_ID",
		Short: "Remove a step and its fields",
		Long:  `Remove a step and its fields. The last remaining step cannot be removed.`,
		Args:  cobra.ExactArgs(1),
		Example: `  # Remove the third step
  formcraft steps remove form_1234 --step 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return editForm(cmd, fc, args[0], func(b *builder.Session) error {
				return b.DeleteStep(opts.step - 1)
			})
		},
	}

	cmd.Flags().IntVarP(&opts.step, "step", "s", 0, "Step number (1-based)")
	_ = cmd.MarkFlagRequired("step")

	return cmd
}
