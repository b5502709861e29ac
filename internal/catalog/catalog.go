// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package catalog is the registry of field types offered by the palette.
//
// Each type tag maps to one Definition holding its display data, its default
// configuration and its type-specific validation rule, so adding a field type
// is a single registration.
package catalog

import (
	"errors"
	"fmt"

	"github.com/dacolabs/formcraft/internal/model"
)

// ErrUnknownFieldType indicates a type tag that is not registered.
var ErrUnknownFieldType = errors.New("unknown field type")

// Rule checks a present (non-blank) value against a field's constraints and
// returns every violated constraint as a message.
type Rule func(f model.Field, value string) []string

// Definition describes one field type.
type Definition struct {
	Type     model.FieldType
	Label    string
	Icon     string
	Defaults model.Field
	Check    Rule
}

// definitions is kept in palette order.
var definitions = []Definition{
	{
		Type:  model.FieldText,
		Label: "Text Input",
		Icon:  "📝",
		Defaults: model.Field{
			Label:       "Text Field",
			Placeholder: "Enter text...",
		},
		Check: checkLength,
	},
	{
		Type:  model.FieldEmail,
		Label: "Email",
		Icon:  "📧",
		Defaults: model.Field{
			Label:       "Email Address",
			Placeholder: "Enter your email...",
		},
		Check: checkEmail,
	},
	{
		Type:  model.FieldPhone,
		Label: "Phone",
		Icon:  "📞",
		Defaults: model.Field{
			Label:       "Phone Number",
			Placeholder: "Enter phone number...",
		},
		Check: checkPhone,
	},
	{
		Type:  model.FieldTextarea,
		Label: "Textarea",
		Icon:  "📄",
		Defaults: model.Field{
			Label:       "Message",
			Placeholder: "Enter your message...",
			Rows:        4,
		},
		Check: checkLength,
	},
	{
		Type:  model.FieldDropdown,
		Label: "Dropdown",
		Icon:  "📋",
		Defaults: model.Field{
			Label:   "Select Option",
			Options: []string{"Option 1", "Option 2", "Option 3"},
		},
	},
	{
		Type:     model.FieldCheckbox,
		Label:    "Checkbox",
		Icon:     "☑️",
		Defaults: model.Field{Label: "Checkbox"},
	},
	{
		Type:     model.FieldDate,
		Label:    "Date Picker",
		Icon:     "📅",
		Defaults: model.Field{Label: "Date"},
	},
	{
		Type:  model.FieldNumber,
		Label: "Number",
		Icon:  "🔢",
		Defaults: model.Field{
			Label:       "Number",
			Placeholder: "Enter number...",
		},
		Check: checkNumber,
	},
}

var byType = func() map[model.FieldType]int {
	idx := make(map[model.FieldType]int, len(definitions))
	for i, d := range definitions {
		idx[d.Type] = i
	}
	return idx
}()

// List returns the field type definitions in palette order.
func List() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		d.Defaults = d.Defaults.Clone()
		out[i] = d
	}
	return out
}

// Lookup returns the definition registered for typ.
func Lookup(typ model.FieldType) (Definition, error) {
	i, ok := byType[typ]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, typ)
	}
	d := definitions[i]
	d.Defaults = d.Defaults.Clone()
	return d, nil
}

// Defaults returns a new field of type typ carrying the type's default
// configuration. The returned field has no ID.
func Defaults(typ model.FieldType) (model.Field, error) {
	d, err := Lookup(typ)
	if err != nil {
		return model.Field{}, err
	}
	f := d.Defaults
	f.Type = typ
	return f, nil
}

// Known reports whether typ is registered.
func Known(typ model.FieldType) bool {
	_, ok := byType[typ]
	return ok
}

// Types returns the registered type tags in palette order.
func Types() []model.FieldType {
	out := make([]model.FieldType, len(definitions))
	for i, d := range definitions {
		out[i] = d.Type
	}
	return out
}
