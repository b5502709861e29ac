// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dacolabs/formcraft/internal/filler"
	"github.com/dacolabs/formcraft/internal/model"
)

// Navigation actions offered under each step.
const (
	ActionNext   = "next"
	ActionBack   = "back"
	ActionSubmit = "submit"
)

// Progress renders the step indicator shown above a step.
func Progress(stepIndex, totalSteps int) string {
	if totalSteps <= 0 {
		return ""
	}
	pct := float64(stepIndex+1) / float64(totalSteps) * 100
	const width = 20
	filled := int(math.Round(pct / 100 * width))
	return fmt.Sprintf("Step %d of %d  %s%s  %d%% Complete",
		stepIndex+1, totalSteps,
		strings.Repeat("█", filled), strings.Repeat("░", width-filled),
		int(math.Round(pct)))
}

// Actions returns the navigation choices for a step.
func Actions(stepIndex int, last bool) []huh.Option[string] {
	var opts []huh.Option[string]
	if last {
		opts = append(opts, huh.NewOption("Submit", ActionSubmit))
	} else {
		opts = append(opts, huh.NewOption("Next", ActionNext))
	}
	if stepIndex > 0 {
		opts = append(opts, huh.NewOption("Previous", ActionBack))
	}
	return opts
}

// answer holds the raw input of one field while a step form runs.
type answer struct {
	text    string
	checked bool
}

func (a *answer) load(v any, ok bool) {
	if !ok {
		return
	}
	switch val := v.(type) {
	case bool:
		a.checked = val
	case string:
		a.text = val
	default:
		a.text = fmt.Sprint(val)
	}
}

func (a *answer) value(f model.Field) any {
	if f.Type == model.FieldCheckbox {
		return a.checked
	}
	return a.text
}

// fieldInput builds the huh input for one field. Validation errors from the
// previous attempt replace the help text.
func fieldInput(f model.Field, a *answer, errs []string) huh.Field {
	title := f.Label
	if f.Required {
		title += " *"
	}
	desc := f.HelpText
	if len(errs) > 0 {
		desc = lipgloss.NewStyle().Foreground(errorColor).Render(strings.Join(errs, "\n"))
	}

	switch f.Type {
	case model.FieldCheckbox:
		return huh.NewConfirm().
			Title(title).
			Description(desc).
			Affirmative("Yes").
			Negative("No").
			Value(&a.checked)
	case model.FieldTextarea:
		rows := f.Rows
		if rows <= 0 {
			rows = 4
		}
		return huh.NewText().
			Title(title).
			Description(desc).
			Placeholder(f.Placeholder).
			Lines(rows).
			Value(&a.text)
	case model.FieldDropdown:
		opts := []huh.Option[string]{huh.NewOption("Select an option", "")}
		for _, o := range f.Options {
			opts = append(opts, huh.NewOption(o, o))
		}
		return huh.NewSelect[string]().
			Title(title).
			Description(desc).
			Options(opts...).
			Value(&a.text)
	default:
		placeholder := f.Placeholder
		if f.Type == model.FieldDate && placeholder == "" {
			placeholder = "YYYY-MM-DD"
		}
		return huh.NewInput().
			Title(title).
			Description(desc).
			Placeholder(placeholder).
			Value(&a.text)
	}
}

// RunFiller walks a respondent through the session one step at a time until
// the form is submitted. Validation errors are shown on the step they
// belong to.
func RunFiller(ctx context.Context, theme *huh.Theme, s *filler.Session) error {
	doc := s.Document()
	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render(doc.Title))
	if doc.Description != "" {
		fmt.Println(doc.Description)
	}

	for s.State() == filler.StateActive {
		step := s.Step()
		idx := s.StepIndex()
		errs := s.Errors()

		answers := make([]*answer, len(step.Fields))
		inputs := make([]huh.Field, 0, len(step.Fields)+1)
		for i, f := range step.Fields {
			a := &answer{}
			v, ok := s.Value(f.ID)
			a.load(v, ok)
			answers[i] = a
			inputs = append(inputs, fieldInput(f, a, errs[f.ID]))
		}

		action := ActionNext
		if s.IsLastStep() {
			action = ActionSubmit
		}
		inputs = append(inputs, huh.NewSelect[string]().
			Options(Actions(idx, s.IsLastStep())...).
			Value(&action))

		err := huh.NewForm(
			huh.NewGroup(inputs...).
				Title(step.Title).
				Description(Progress(idx, s.StepCount())),
		).WithTheme(theme).RunWithContext(ctx)
		if err != nil {
			return err
		}

		for i, f := range step.Fields {
			if err := s.SetValue(f.ID, answers[i].value(f)); err != nil {
				return err
			}
		}

		switch action {
		case ActionBack:
			err = s.Back()
		case ActionSubmit:
			_, err = s.Submit(ctx)
		default:
			_, err = s.Advance()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
