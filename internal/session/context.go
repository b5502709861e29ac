// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/formcraft/internal/config"
	"github.com/dacolabs/formcraft/internal/logger"
	"github.com/dacolabs/formcraft/internal/store"
)

var (
	// ErrNotInitialized indicates no formcraft.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a formcraft project (formcraft.yaml not found, run 'formcraft init')")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStoreUnavailable indicates the configured store could not be opened.
	ErrStoreUnavailable = errors.New("form store unavailable")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the opened store.
type Context struct {
	// Dir is the project directory holding formcraft.yaml.
	Dir string

	Config *config.Config
	Store  store.Store
	Logger *slog.Logger

	logCloser io.Closer
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the formcraft Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadDir(ctx, cwd)
}

// LoadDir loads the project context from dir.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	log, logCloser, err := logger.New(logger.Config{
		Dir:   resolve(dir, cfg.Log.Dir),
		Level: cfg.LogLevel(),
		JSON:  cfg.Log.JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	storeCfg := cfg.Store
	storeCfg.Path = resolve(dir, storeCfg.Path)
	st, err := store.Open(ctx, storeCfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log.Debug("project loaded", "dir", dir, "store", storeCfg.Driver, "path", storeCfg.Path)

	fcCtx := &Context{
		Dir:       dir,
		Config:    cfg,
		Store:     st,
		Logger:    log,
		logCloser: logCloser,
	}

	return context.WithValue(ctx, contextKey{}, fcCtx), nil
}

// resolve makes a relative path relative to dir. Empty stays empty.
func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// From extracts the formcraft Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if fcCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return fcCtx
	}
	return nil
}

// Close releases the store and the log file.
func (c *Context) Close() error {
	return errors.Join(c.Store.Close(), c.logCloser.Close())
}
