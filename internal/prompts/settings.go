// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/model"
)

// ErrNoOptions is returned when a dropdown would be left without options.
var ErrNoOptions = errors.New("a dropdown needs at least one option")

// FieldSettings is the editable text form of a field's attributes.
// Numeric bounds are kept as strings so that a blank entry clears the bound.
type FieldSettings struct {
	Label       string
	Required    bool
	Placeholder string
	HelpText    string
	Options     string // one option per line
	Rows        string
	MinLength   string
	MaxLength   string
	Min         string
	Max         string
}

// NewFieldSettings fills settings from the current attributes of f.
func NewFieldSettings(f model.Field) FieldSettings {
	s := FieldSettings{
		Label:       f.Label,
		Required:    f.Required,
		Placeholder: f.Placeholder,
		HelpText:    f.HelpText,
		Options:     strings.Join(f.Options, "\n"),
	}
	if f.Rows > 0 {
		s.Rows = strconv.Itoa(f.Rows)
	}
	s.MinLength = intString(f.MinLength)
	s.MaxLength = intString(f.MaxLength)
	s.Min = floatString(f.Min)
	s.Max = floatString(f.Max)
	return s
}

func intString(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatString(p *float64) string {
	if p == nil {
		return ""
	}
	return catalog.FormatNumber(*p)
}

// Patch returns the changes between s and f. Attributes that do not apply
// to the field's type are ignored.
func (s FieldSettings) Patch(f model.Field) (form.FieldPatch, error) {
	var p form.FieldPatch

	if s.Label != f.Label {
		p.Label = &s.Label
	}
	if s.Required != f.Required {
		p.Required = &s.Required
	}
	if f.Type != model.FieldCheckbox && f.Type != model.FieldDropdown && s.Placeholder != f.Placeholder {
		p.Placeholder = &s.Placeholder
	}
	if s.HelpText != f.HelpText {
		p.HelpText = &s.HelpText
	}

	switch f.Type {
	case model.FieldDropdown:
		opts := splitOptions(s.Options)
		if !slices.Equal(opts, f.Options) {
			if len(opts) == 0 {
				return form.FieldPatch{}, ErrNoOptions
			}
			p.Options = &opts
		}
	case model.FieldTextarea:
		rows, err := parseInt("rows", s.Rows)
		if err != nil {
			return form.FieldPatch{}, err
		}
		if rows != nil && *rows != f.Rows {
			p.Rows = rows
		}
	case model.FieldNumber:
		lo, err := parseFloat("min", s.Min)
		if err != nil {
			return form.FieldPatch{}, err
		}
		hi, err := parseFloat("max", s.Max)
		if err != nil {
			return form.FieldPatch{}, err
		}
		p.Min = boundPatch(f.Min, lo)
		p.Max = boundPatch(f.Max, hi)
	}

	if f.Type == model.FieldText || f.Type == model.FieldTextarea {
		lo, err := parseInt("min length", s.MinLength)
		if err != nil {
			return form.FieldPatch{}, err
		}
		hi, err := parseInt("max length", s.MaxLength)
		if err != nil {
			return form.FieldPatch{}, err
		}
		p.MinLength = boundPatch(f.MinLength, lo)
		p.MaxLength = boundPatch(f.MaxLength, hi)
	}
	return p, nil
}

// boundPatch returns nil when the bound is unchanged.
func boundPatch[T comparable](cur, next *T) **T {
	switch {
	case cur == nil && next == nil:
		return nil
	case cur != nil && next != nil && *cur == *next:
		return nil
	case next == nil:
		return form.Clear[T]()
	default:
		return form.Set(*next)
	}
}

func splitOptions(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func parseInt(name, s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%s: %q is not a non-negative whole number", name, s)
	}
	return &n, nil
}

func parseFloat(name, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return nil, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return &n, nil
}

// RunFieldSettingsForm runs the settings panel for f, editing s in place.
// Only the inputs relevant to the field's type are shown.
func RunFieldSettingsForm(theme *huh.Theme, f model.Field, s *FieldSettings) error {
	def, _ := catalog.Lookup(f.Type)
	isType := func(types ...model.FieldType) bool { return slices.Contains(types, f.Type) }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Placeholder("Enter field label").
				Value(&s.Label),
			huh.NewConfirm().
				Title("Required").
				Affirmative("Yes").
				Negative("No").
				Value(&s.Required),
			huh.NewInput().
				Title("Help text").
				Value(&s.HelpText),
		).Title(fmt.Sprintf("%s %s settings", def.Icon, def.Label)),
		huh.NewGroup(
			huh.NewInput().
				Title("Placeholder").
				Value(&s.Placeholder),
		).WithHideFunc(func() bool { return isType(model.FieldCheckbox, model.FieldDropdown) }),
		huh.NewGroup(
			huh.NewText().
				Title("Options").
				Description("One option per line").
				Validate(requiredValidator("at least one option")).
				Value(&s.Options),
		).WithHideFunc(func() bool { return !isType(model.FieldDropdown) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Rows").
				Validate(optionalIntValidator).
				Value(&s.Rows),
		).WithHideFunc(func() bool { return !isType(model.FieldTextarea) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum length").
				Description("Leave blank for no limit").
				Validate(optionalIntValidator).
				Value(&s.MinLength),
			huh.NewInput().
				Title("Maximum length").
				Description("Leave blank for no limit").
				Validate(optionalIntValidator).
				Value(&s.MaxLength),
		).WithHideFunc(func() bool { return !isType(model.FieldText, model.FieldTextarea) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum value").
				Validate(optionalFloatValidator).
				Value(&s.Min),
			huh.NewInput().
				Title("Maximum value").
				Validate(optionalFloatValidator).
				Value(&s.Max),
		).WithHideFunc(func() bool { return !isType(model.FieldNumber) }),
	).WithTheme(theme).Run()
}
