// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dacolabs/formcraft/internal/filler"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrInvalidAnswers is returned when submitted answers fail validation.
var ErrInvalidAnswers = errors.New("answers failed validation")

type fillOptions struct {
	answers string
}

func newFillCmd() *cobra.Command {
	opts := &fillOptions{}

	cmd := &cobra.Command{
		Use:   "fill [FORM_ID|demo]",
		Short: "Fill out a published form",
		Long: `Fill out a published form step by step and submit a response.
Use "demo" to try the built-in demo form; demo responses are not stored.

With --answers the response is read from a YAML or JSON file mapping field
ids (or labels) to values, and submitted without prompts.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Interactive
  formcraft fill form_1234

  # Demo form
  formcraft fill demo

  # Scripted
  formcraft fill form_1234 --answers answers.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id, err := formID(cmd, fc, args, "Form to fill")
			if err != nil {
				return err
			}
			return runFill(cmd, fc, id, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.answers, "answers", "a", "", "Answers file (YAML or JSON)")

	return cmd
}

func newPreviewCmd() *cobra.Command {
	opts := &fillOptions{}

	cmd := &cobra.Command{
		Use:   "preview [FORM_ID]",
		Short: "Try a form before publishing it",
		Long: `Fill out a form as a respondent would, including drafts.
Preview responses are not stored.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Preview a draft
  formcraft preview form_1234`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id, err := formID(cmd, fc, args, "Form to preview")
			if err != nil {
				return err
			}
			return runFill(cmd, fc, id, opts, filler.WithPreview())
		},
	}

	cmd.Flags().StringVarP(&opts.answers, "answers", "a", "", "Answers file (YAML or JSON)")

	return cmd
}

func runFill(cmd *cobra.Command, fc *session.Context, id string, opts *fillOptions, extra ...filler.Option) error {
	ctx := cmd.Context()
	fopts := append([]filler.Option{filler.WithLogger(fc.Logger)}, extra...)
	s, err := filler.Open(ctx, fc.Store, id, fopts...)
	if err != nil {
		return err
	}
	if s.State() == filler.StateNotFound {
		return fmt.Errorf("form %q not found or not published", id)
	}

	if opts.answers != "" {
		answers, err := readAnswers(opts.answers)
		if err != nil {
			return err
		}
		if err := submitAnswers(cmd, s, answers); err != nil {
			return err
		}
	} else if err := prompts.RunFiller(ctx, theme(ctx, fc), s); err != nil {
		return err
	}

	sub, ok := s.Submission()
	if !ok {
		return nil
	}
	fc.Logger.Info("response recorded", "form", id, "response", sub.ID)
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Response", Value: sub.ID},
		{Label: "Answers", Value: fmt.Sprint(len(sub.Data))},
	}, "Thank you! Your response has been submitted.")
	return nil
}

func readAnswers(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided answers file
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	answers := map[string]any{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	return answers, nil
}

// answerFor looks an answer up by field id, then by label. Checkbox answers
// stay booleans; everything else is entered as text.
func answerFor(f model.Field, answers map[string]any) (any, bool) {
	v, ok := answers[f.ID]
	if !ok {
		v, ok = answers[f.Label]
	}
	if !ok || v == nil {
		return nil, false
	}
	if b, isBool := v.(bool); isBool && f.Type == model.FieldCheckbox {
		return b, true
	}
	return fmt.Sprint(v), true
}

// submitAnswers walks every step with the given answers and submits on the
// last one. Validation errors of the first failing step are reported.
func submitAnswers(cmd *cobra.Command, s *filler.Session, answers map[string]any) error {
	for s.State() == filler.StateActive {
		for _, f := range s.Step().Fields {
			if v, ok := answerFor(f, answers); ok {
				if err := s.SetValue(f.ID, v); err != nil {
					return err
				}
			}
		}

		if s.IsLastStep() {
			res, err := s.Submit(cmd.Context())
			if err != nil {
				return err
			}
			if !res.Valid {
				return reportErrors(cmd.ErrOrStderr(), s.Step(), res.Errors)
			}
			continue
		}

		res, err := s.Advance()
		if err != nil {
			return err
		}
		if !res.Valid {
			return reportErrors(cmd.ErrOrStderr(), s.Step(), res.Errors)
		}
	}
	return nil
}

func reportErrors(out io.Writer, step model.Step, errs map[string][]string) error {
	labels := make(map[string]string, len(step.Fields))
	for _, f := range step.Fields {
		labels[f.ID] = f.Label
	}
	ids := make([]string, 0, len(errs))
	for id := range errs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	_, _ = fmt.Fprintf(out, "%s:\n", step.Title)
	for _, id := range ids {
		_, _ = fmt.Fprintf(out, "  %s: %s\n", labels[id], strings.Join(errs[id], "; "))
	}
	return fmt.Errorf("%w on step %q", ErrInvalidAnswers, step.Title)
}
