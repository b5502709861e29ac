// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the formcraft version",
		Example: `  # Full build information
  formcraft version

  # Version number only
  formcraft version --short`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			b := version.Get()
			prompts.PrintResult([]prompts.ResultField{
				{Label: "Version", Value: b.Version},
				{Label: "Commit", Value: b.Commit},
				{Label: "Built", Value: b.Date},
				{Label: "Go", Value: b.Go},
			}, "")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}
