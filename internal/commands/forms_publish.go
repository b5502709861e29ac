// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"

	"github.com/dacolabs/formcraft/internal/builder"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/session"
	"github.com/dacolabs/formcraft/internal/share"
	"github.com/spf13/cobra"
)

func newFormsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish [FORM_ID]",
		Short: "Publish a form so it can be filled",
		Long: `Publish a form. Published forms can be filled through their share link
or with 'formcraft fill'.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Publish a form
  formcraft forms publish form_1234`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			id, err := formID(cmd, fc, args, "Form to publish")
			if err != nil {
				return err
			}
			return runFormsPublish(cmd, fc, id)
		},
	}
}

func runFormsPublish(cmd *cobra.Command, fc *session.Context, id string) error {
	var link string
	err := editForm(cmd, fc, id, func(b *builder.Session) error {
		if err := b.Publish(cmd.Context()); err != nil {
			return err
		}
		u, err := b.ShareURL(fc.Config.Share.BaseURL)
		if err != nil {
			return err
		}
		link = u
		return nil
	})
	if err != nil {
		return err
	}
	fc.Logger.Info("form published", "form", id)

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Form", Value: id},
		{Label: "Share link", Value: link},
	}, "Form published")
	return nil
}

func newFormsShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share [FORM_ID|demo]",
		Short: "Print the share link of a published form",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Share link of a form
  formcraft forms share form_1234

  # Link to the demo form
  formcraft forms share demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			base := fc.Config.Share.BaseURL

			if len(args) > 0 && args[0] == "demo" {
				u, err := share.DemoURL(base)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), u)
				return nil
			}

			id, err := formID(cmd, fc, args, "Form to share")
			if err != nil {
				return err
			}
			doc, err := fc.Store.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("form %q: %w", id, err)
			}
			if !doc.IsPublished {
				return errors.Join(builder.ErrNotPublished,
					fmt.Errorf("publish it first with 'formcraft forms publish %s'", id))
			}
			u, err := share.URL(base, doc.ID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
}
