// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/dacolabs/formcraft/internal/model"
)

// ErrUnknownTemplate indicates a template id that is not part of the catalog.
var ErrUnknownTemplate = errors.New("unknown template")

// DemoID is the document id under which the demo template is served.
const DemoID = "demo"

var templates = []model.Template{
	{
		ID:          "contact-us",
		Name:        "Contact Us Form",
		Description: "Basic contact form with name, email, and message",
		Steps: []model.Step{
			{
				ID:    "step-1",
				Title: "Personal Information",
				Fields: []model.Field{
					{ID: "1", Type: model.FieldText, Label: "Full Name", Placeholder: "Enter your full name", Required: true},
					{ID: "2", Type: model.FieldEmail, Label: "Email Address", Placeholder: "Enter your email", Required: true},
					{ID: "3", Type: model.FieldPhone, Label: "Phone Number", Placeholder: "Enter your phone number"},
				},
			},
			{
				ID:    "step-2",
				Title: "Your Message",
				Fields: []model.Field{
					{ID: "4", Type: model.FieldTextarea, Label: "Message", Placeholder: "Enter your message", Required: true, Rows: 5},
				},
			},
		},
	},
	{
		ID:          "survey",
		Name:        "Customer Survey",
		Description: "Multi-step customer feedback survey",
		Steps: []model.Step{
			{
				ID:    "step-1",
				Title: "Basic Information",
				Fields: []model.Field{
					{ID: "1", Type: model.FieldText, Label: "Your Name", Placeholder: "Enter your name", Required: true},
					{
						ID:       "2",
						Type:     model.FieldDropdown,
						Label:    "How did you hear about us?",
						Required: true,
						Options:  []string{"Social Media", "Google Search", "Friend Referral", "Advertisement", "Other"},
					},
				},
			},
			{
				ID:    "step-2",
				Title: "Feedback",
				Fields: []model.Field{
					{
						ID:       "3",
						Type:     model.FieldDropdown,
						Label:    "Rate our service",
						Required: true,
						Options:  []string{"Excellent", "Good", "Average", "Poor"},
					},
					{ID: "4", Type: model.FieldTextarea, Label: "Additional Comments", Placeholder: "Share your feedback...", Rows: 4},
				},
			},
		},
	},
}

func cloneTemplate(t model.Template) model.Template {
	steps := make([]model.Step, len(t.Steps))
	for i, s := range t.Steps {
		steps[i] = s.Clone()
	}
	t.Steps = steps
	return t
}

// Templates returns the ready-made form templates.
func Templates() []model.Template {
	out := make([]model.Template, len(templates))
	for i, t := range templates {
		out[i] = cloneTemplate(t)
	}
	return out
}

// Template returns the template with the given id.
func Template(id string) (model.Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return cloneTemplate(t), nil
		}
	}
	return model.Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}

// Demo instantiates the first template as an already-published document.
func Demo(now time.Time) model.Document {
	t := cloneTemplate(templates[0])
	return model.Document{
		ID:          DemoID,
		Title:       t.Name,
		Description: t.Description,
		Steps:       t.Steps,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsPublished: true,
		Responses:   []model.Submission{},
	}
}
