// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/builder"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/dacolabs/formcraft/internal/store"
	"github.com/spf13/cobra"
)

// theme returns the prompt theme for the project's saved appearance.
func theme(ctx context.Context, fc *session.Context) *huh.Theme {
	t, err := fc.Store.Theme(ctx)
	if err != nil {
		fc.Logger.Warn("failed to read theme preference", "error", err)
		t = store.ThemeLight
	}
	return prompts.Theme(t)
}

// formID returns the form id from args, or asks for one.
func formID(cmd *cobra.Command, fc *session.Context, args []string, title string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	docs, err := fc.Store.List(cmd.Context())
	if err != nil {
		return "", err
	}
	var id string
	if err := prompts.RunFormSelect(theme(cmd.Context(), fc), title, docs, &id); err != nil {
		return "", err
	}
	return id, nil
}

// editForm opens a builder session on id, runs fn and closes the session,
// which saves whatever fn changed. When fn fails nothing it changed is saved.
func editForm(cmd *cobra.Command, fc *session.Context, id string, fn func(*builder.Session) error) error {
	ctx := cmd.Context()
	b, err := builder.Open(ctx, fc.Store, id,
		builder.WithLogger(fc.Logger),
		builder.WithDelay(fc.Config.AutosaveDelay()),
	)
	if err != nil {
		return err
	}
	if b.State() == builder.StateNotFound {
		return fmt.Errorf("form %q: %w", id, store.ErrNotFound)
	}
	if err := fn(b); err != nil {
		b.Discard()
		return err
	}
	return b.Close(ctx)
}

// stepIndex converts a 1-based step flag into an index. Zero selects the
// form's current step.
func stepIndex(step, current int) int {
	if step <= 0 {
		return current
	}
	return step - 1
}

func truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	if utf8.RuneCountInString(s) > n {
		return string([]rune(s)[:n-3]) + "..."
	}
	return s
}
