// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/formcraft/internal/config"
	"github.com/dacolabs/formcraft/internal/prompts"
	"github.com/dacolabs/formcraft/internal/store"
	"github.com/spf13/cobra"
)

type initOptions struct {
	driver         string
	path           string
	baseURL        string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new formcraft project",
		Long: `Initialize a new formcraft project with a formcraft.yaml configuration file.
Choose where forms are stored and the base URL used for share links.`,
		Example: `  # Interactive mode
  formcraft init

  # Non-interactive
  formcraft init --non-interactive
  formcraft init --driver sqlite --base-url https://forms.example.com --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.driver, "driver", "d", config.DriverFile, "Form storage (file, sqlite or memory)")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Storage path (defaults per driver)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", config.DefaultBaseURL, "Base URL for share links")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("formcraft.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(prompts.Theme(store.ThemeLight), &opts.driver, &opts.path, &opts.baseURL); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Store: config.StoreConfig{
			Driver: opts.driver,
			Path:   opts.path,
		},
		Share: config.ShareConfig{BaseURL: opts.baseURL},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Store", Value: storeLabel(cfg.Store)},
		{Label: "Share links", Value: cfg.Share.BaseURL},
	}, "Initialization completed")
	return nil
}

func storeLabel(s config.StoreConfig) string {
	if s.Driver == config.DriverMemory {
		return s.Driver
	}
	return fmt.Sprintf("%s (%s)", s.Driver, s.Path)
}
