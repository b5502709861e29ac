// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles formcraft project configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "formcraft.yaml"

// Store drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultStorePath     = ".formcraft/forms.json"
	DefaultSQLitePath    = ".formcraft/forms.db"
	DefaultBaseURL       = "http://localhost:3000"
	DefaultAutosaveDelay = "1s"
	DefaultLogLevel      = "warn"
)

// Config represents the formcraft.yaml project configuration file.
type Config struct {
	Version int           `yaml:"version"`
	Store   StoreConfig   `yaml:"store"`
	Share   ShareConfig   `yaml:"share,omitempty"`
	Builder BuilderConfig `yaml:"builder,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path,omitempty"`
}

// ShareConfig configures share links.
type ShareConfig struct {
	BaseURL string `yaml:"baseURL,omitempty"`
}

// BuilderConfig configures the form editor.
type BuilderConfig struct {
	AutosaveDelay string `yaml:"autosaveDelay,omitempty"`
}

// LogConfig configures logging. An empty Dir logs to stderr.
type LogConfig struct {
	Dir   string `yaml:"dir,omitempty"`
	Level string `yaml:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Version: CurrentConfigVersion}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = DriverFile
	}
	if c.Store.Path == "" {
		switch c.Store.Driver {
		case DriverFile:
			c.Store.Path = DefaultStorePath
		case DriverSQLite:
			c.Store.Path = DefaultSQLitePath
		}
	}
	if c.Share.BaseURL == "" {
		c.Share.BaseURL = DefaultBaseURL
	}
	if c.Builder.AutosaveDelay == "" {
		c.Builder.AutosaveDelay = DefaultAutosaveDelay
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// AutosaveDelay returns the builder's quiet period before an automatic save.
func (c *Config) AutosaveDelay() time.Duration {
	d, err := time.ParseDuration(c.Builder.AutosaveDelay)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultAutosaveDelay)
	}
	return d
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}

	switch c.Store.Driver {
	case DriverFile, DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the %s driver", c.Store.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store.driver %q (want %s, %s or %s)",
			c.Store.Driver, DriverFile, DriverSQLite, DriverMemory)
	}

	if c.Share.BaseURL != "" &&
		!strings.HasPrefix(c.Share.BaseURL, "http://") && !strings.HasPrefix(c.Share.BaseURL, "https://") {
		return fmt.Errorf("share.baseURL must start with http:// or https://, got %q", c.Share.BaseURL)
	}

	if c.Builder.AutosaveDelay != "" {
		d, err := time.ParseDuration(c.Builder.AutosaveDelay)
		if err != nil {
			return fmt.Errorf("invalid builder.autosaveDelay: %w", err)
		}
		if d <= 0 {
			return errors.New("builder.autosaveDelay must be positive")
		}
	}

	if c.Log.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return fmt.Errorf("invalid log.level %q", c.Log.Level)
		}
	}
	return nil
}
