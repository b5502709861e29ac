// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package store

import (
	"context"
	"fmt"

	"github.com/dacolabs/formcraft/internal/config"
)

// Open returns the store selected by cfg.Driver. Relative paths are resolved
// by the caller.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile, "":
		return OpenFile(ctx, cfg.Path)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
