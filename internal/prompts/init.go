// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/formcraft/internal/config"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(theme *huh.Theme, driver, path, baseURL *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Form storage").
				Options(
					huh.NewOption("JSON file (recommended)", config.DriverFile),
					huh.NewOption("SQLite database", config.DriverSQLite),
					huh.NewOption("In memory (nothing is kept)", config.DriverMemory),
				).
				Value(driver),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Storage path").
				PlaceholderFunc(func() string {
					if *driver == config.DriverSQLite {
						return config.DefaultSQLitePath
					}
					return config.DefaultStorePath
				}, driver).
				Value(path),
		).WithHideFunc(func() bool { return *driver == config.DriverMemory }),
		huh.NewGroup(
			huh.NewInput().
				Title("Share base URL").
				Placeholder(config.DefaultBaseURL).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
						return errors.New("base URL must start with http:// or https://")
					}
					return nil
				}).
				Value(baseURL),
		),
	).WithTheme(theme).Run()
}
