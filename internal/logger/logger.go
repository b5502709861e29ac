// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logger provides structured logging for formcraft.
// It uses log/slog, writing to stderr or to a rotating file via lumberjack.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file name inside the log directory.
const FileName = "formcraft.log"

// Config holds logger configuration options.
type Config struct {
	// Dir is the directory where log files are stored.
	// If empty, logs go to Stderr.
	Dir string

	Level slog.Level

	// JSON enables JSON output format. If false, text format is used.
	JSON bool

	// Component is an optional component name to add to all log entries.
	Component string

	// Stderr overrides os.Stderr.
	Stderr io.Writer
}

// New builds a logger from cfg. The returned closer releases the log file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		writer io.Writer = cfg.Stderr
		closer io.Closer = nopCloser{}
	)
	if writer == nil {
		writer = os.Stderr
	}

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, nil, err
		}

		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, FileName),
			MaxSize:    50,   // megabytes
			MaxBackups: 3,    // number of old files to keep
			MaxAge:     14,   // days
			Compress:   true, // compress rotated files
		}
		writer = logFile
		closer = logFile
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.Level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger, closer, nil
}

// Init builds a logger from cfg and installs it as the slog default.
func Init(cfg Config) (io.Closer, error) {
	logger, closer, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closer, nil
}

// WithComponent returns the default logger with a component attribute.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
