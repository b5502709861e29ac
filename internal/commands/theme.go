// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/formcraft/internal/session"
	"github.com/dacolabs/formcraft/internal/store"
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the prompt theme",
		Long:      `Show the light/dark appearance preference, set it, or toggle it.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(store.ThemeLight), string(store.ThemeDark), "toggle"},
		Example: `  # Show the theme
  formcraft theme

  # Switch between light and dark
  formcraft theme toggle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			current, err := fc.Store.Theme(ctx)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), current)
				return nil
			}

			next := current.Toggle()
			if args[0] != "toggle" {
				if next, err = store.ParseTheme(args[0]); err != nil {
					return err
				}
			}
			if err := fc.Store.SetTheme(ctx, next); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}
