// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"log/slog"

	"github.com/dacolabs/formcraft/internal/commands"
	"github.com/dacolabs/formcraft/internal/export"
	"github.com/dacolabs/formcraft/internal/export/docjson"
	"github.com/dacolabs/formcraft/internal/export/docyaml"
	"github.com/dacolabs/formcraft/internal/export/markdown"
	"github.com/dacolabs/formcraft/internal/export/responses"
	"github.com/dacolabs/formcraft/internal/export/schema"
	"github.com/dacolabs/formcraft/internal/logger"
)

// Exporters returns every export format the CLI offers.
func Exporters() export.Register {
	exporters := make(export.Register)
	exporters.Add(&docjson.Exporter{})
	exporters.Add(&docyaml.Exporter{})
	exporters.Add(&schema.Exporter{})
	exporters.Add(&markdown.Exporter{})
	exporters.Add(&responses.Exporter{})
	return exporters
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
//
// FORMCRAFT_DEBUG=1 enables debug logging to stderr until a project
// configuration takes over.
func Run(ctx context.Context, getenv func(string) string) error {
	level := slog.LevelWarn
	if getenv("FORMCRAFT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	closer, err := logger.Init(logger.Config{Level: level, Component: "cli"})
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck

	rootCmd := commands.NewRootCmd(Exporters())
	return rootCmd.ExecuteContext(ctx)
}
