// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validation evaluates respondent answers against field constraints.
//
// Validation failures are data: they are returned as messages and never
// reported through error values.
package validation

import (
	"fmt"
	"strings"

	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/model"
)

// Result is the outcome of validating a step.
// Errors only holds keys for fields with at least one message.
type Result struct {
	Valid  bool                `json:"isValid"`
	Errors map[string][]string `json:"errors"`
}

// IsBlank reports whether a value counts as empty: absent, false,
// or a string that trims to nothing.
func IsBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	default:
		return false
	}
}

// ValidateField returns the messages for value against f, in rule order.
// A missing required value short-circuits with exactly one message; a missing
// optional value passes; otherwise all type-specific rules run.
func ValidateField(f model.Field, value any) []string {
	if IsBlank(value) {
		if f.Required {
			return []string{f.Label + " is required"}
		}
		return nil
	}

	def, err := catalog.Lookup(f.Type)
	if err != nil || def.Check == nil {
		return nil
	}
	return def.Check(f, stringify(value))
}

// ValidateStep validates every field independently against data.
func ValidateStep(fields []model.Field, data map[string]any) Result {
	res := Result{Valid: true, Errors: map[string][]string{}}
	for _, f := range fields {
		if errs := ValidateField(f, data[f.ID]); len(errs) > 0 {
			res.Errors[f.ID] = errs
			res.Valid = false
		}
	}
	return res
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case *string:
		return *v
	default:
		return fmt.Sprint(v)
	}
}
