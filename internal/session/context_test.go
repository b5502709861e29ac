// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/formcraft/internal/config"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, cfg *config.Config) {
	t.Helper()
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.Default())

	ctx, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)

	fc := From(ctx)
	require.NotNil(t, fc)
	defer fc.Close() //nolint:errcheck

	assert.Equal(t, dir, fc.Dir)
	assert.Equal(t, config.DriverFile, fc.Config.Store.Driver)
	require.NotNil(t, fc.Logger)

	require.NoError(t, fc.Store.Save(context.Background(), model.Document{ID: "form_1"}))
	_, err = os.Stat(filepath.Join(dir, config.DefaultStorePath))
	assert.NoError(t, err, "relative store path resolves against the project dir")
}

func TestLoadDir_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Version: 1, Store: config.StoreConfig{Driver: config.DriverSQLite}}
	cfg.ApplyDefaults()
	writeConfig(t, dir, cfg)

	ctx, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	fc := From(ctx)
	require.NotNil(t, fc)
	require.NoError(t, fc.Close())

	_, err = os.Stat(filepath.Join(dir, config.DefaultSQLitePath))
	assert.NoError(t, err)
}

func TestLoadDir_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		wantErr error
	}{
		{
			name:    "no config",
			setup:   func(*testing.T, string) {},
			wantErr: ErrNotInitialized,
		},
		{
			name: "unparsable config",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("version: [\n"), 0o600))
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "invalid config",
			setup: func(t *testing.T, dir string) {
				writeConfig(t, dir, &config.Config{Version: 7})
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "corrupt store",
			setup: func(t *testing.T, dir string) {
				writeConfig(t, dir, config.Default())
				path := filepath.Join(dir, config.DefaultStorePath)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
				require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
			},
			wantErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := LoadDir(context.Background(), dir)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	assert.Nil(t, FromCommand(cmd))
	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)
	assert.NoError(t, PostRunClose(cmd, nil))

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Store = config.StoreConfig{Driver: config.DriverMemory}
	writeConfig(t, dir, cfg)

	ctx, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	cmd.SetContext(ctx)

	fc, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, fc.Config.Store.Driver)
	assert.NoError(t, PostRunClose(cmd, nil))
}
