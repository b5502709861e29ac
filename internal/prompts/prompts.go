// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dacolabs/formcraft/internal/store"
)

var (
	successColor = lipgloss.Color("#27ca3f")
	labelColor   = lipgloss.Color("#bababa")
	errorColor   = lipgloss.Color("#ff5f56")
	accentLight  = lipgloss.Color("#2563eb")
	accentDark   = lipgloss.Color("#f9ca24")
)

// Theme returns the huh theme used across all CLI forms for the given
// appearance preference.
func Theme(t store.Theme) *huh.Theme {
	theme := huh.ThemeBase16()
	accent := accentLight
	if t == store.ThemeDark {
		theme = huh.ThemeDracula()
		accent = accentDark
	}
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(accent)
	theme.Blurred.Title = theme.Blurred.Title.Foreground(labelColor)
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(successColor)
	label := lipgloss.NewStyle().Foreground(labelColor)
	check := success.Render("✓")

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Println(success.Render("\n" + successMsg))
	}
}

// Confirm asks a yes/no question.
func Confirm(theme *huh.Theme, title string) (bool, error) {
	ok := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(theme).Run()
	return ok, err
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func optionalIntValidator(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	if n < 0 {
		return fmt.Errorf("%d must not be negative", n)
	}
	return nil
}

func optionalFloatValidator(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil || math.IsNaN(n) {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}
