// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package store persists form documents and the UI theme preference.
//
// State lives in two well-known buckets: the document collection and the
// theme. Both are loaded once when a store is opened and each bucket is
// written back whole whenever its value changes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dacolabs/formcraft/internal/model"
)

// Bucket keys.
const (
	BucketForms = "formcraft_forms"
	BucketTheme = "formcraft_theme"
)

var (
	// ErrNotFound indicates no document with the requested id.
	ErrNotFound = errors.New("form not found")

	// ErrUnknownDriver indicates an unsupported storage driver name.
	ErrUnknownDriver = errors.New("unknown store driver")

	// ErrInvalidTheme indicates a theme other than light or dark.
	ErrInvalidTheme = errors.New("theme must be light or dark")
)

// Theme is the UI theme preference.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Store is the persistence collaborator shared by the builder and the filler.
type Store interface {
	// List returns every document in insertion order.
	List(ctx context.Context) ([]model.Document, error)
	// Get returns the document with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (model.Document, error)
	// Save replaces the document with the same id, or appends it.
	Save(ctx context.Context, doc model.Document) error
	// Delete removes the document with the given id if present.
	Delete(ctx context.Context, id string) error

	Theme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, t Theme) error

	Close() error
}

// backend reads and writes raw bucket values.
type backend interface {
	read(ctx context.Context, key string) ([]byte, bool, error)
	write(ctx context.Context, key string, value []byte) error
	close() error
}

// bucketStore keeps both buckets in memory and writes a bucket through to
// its backend on every change.
type bucketStore struct {
	mu    sync.RWMutex
	be    backend
	forms []model.Document
	theme Theme
}

func newBucketStore(ctx context.Context, be backend) (*bucketStore, error) {
	s := &bucketStore{be: be, forms: []model.Document{}, theme: ThemeLight}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *bucketStore) load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.be.read(ctx, BucketForms)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", BucketForms, err)
	}
	if ok && len(raw) > 0 {
		var forms []model.Document
		if err := json.Unmarshal(raw, &forms); err != nil {
			return fmt.Errorf("failed to decode %s: %w", BucketForms, err)
		}
		if forms != nil {
			s.forms = forms
		}
	}

	raw, ok, err = s.be.read(ctx, BucketTheme)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", BucketTheme, err)
	}
	if ok && len(raw) > 0 {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return fmt.Errorf("failed to decode %s: %w", BucketTheme, err)
		}
		if t, err := ParseTheme(name); err == nil {
			s.theme = t
		}
	}
	return nil
}

func (s *bucketStore) flushFormsLocked(ctx context.Context, forms []model.Document) error {
	b, err := json.Marshal(forms)
	if err != nil {
		return err
	}
	return s.be.write(ctx, BucketForms, b)
}

func (s *bucketStore) List(_ context.Context) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Document, len(s.forms))
	for i, d := range s.forms {
		out[i] = d.Clone()
	}
	return out, nil
}

func (s *bucketStore) Get(_ context.Context, id string) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.forms {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return model.Document{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

func (s *bucketStore) Save(ctx context.Context, doc model.Document) error {
	if doc.ID == "" {
		return errors.New("cannot save a form without an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Document, len(s.forms), len(s.forms)+1)
	copy(next, s.forms)
	replaced := false
	for i, d := range next {
		if d.ID == doc.ID {
			next[i] = doc.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, doc.Clone())
	}

	if err := s.flushFormsLocked(ctx, next); err != nil {
		return fmt.Errorf("failed to save form %q: %w", doc.ID, err)
	}
	s.forms = next
	return nil
}

func (s *bucketStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Document, 0, len(s.forms))
	for _, d := range s.forms {
		if d.ID != id {
			next = append(next, d)
		}
	}
	if len(next) == len(s.forms) {
		return nil
	}

	if err := s.flushFormsLocked(ctx, next); err != nil {
		return fmt.Errorf("failed to delete form %q: %w", id, err)
	}
	s.forms = next
	return nil
}

func (s *bucketStore) Theme(_ context.Context) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

func (s *bucketStore) SetTheme(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t == s.theme {
		return nil
	}
	b, err := json.Marshal(string(t))
	if err != nil {
		return err
	}
	if err := s.be.write(ctx, BucketTheme, b); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	s.theme = t
	return nil
}

func (s *bucketStore) Close() error {
	return s.be.close()
}
