// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package builder implements the form editing session.
//
// A Session owns one document while it is being edited. Every mutation
// replaces the session's document with the result of the matching form
// operation and schedules a debounced save. Publish saves immediately.
package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dacolabs/formcraft/internal/clock"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/logger"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/share"
	"github.com/dacolabs/formcraft/internal/store"
	"github.com/google/uuid"
)

// DefaultDelay is the quiet period before an automatic save.
const DefaultDelay = time.Second

var (
	// ErrNotEditing indicates a mutation on a session that is not editing.
	ErrNotEditing = errors.New("form is not being edited")

	// ErrClosed indicates use of a closed session.
	ErrClosed = errors.New("builder session closed")

	// ErrNotPublished indicates a share link request for a draft.
	ErrNotPublished = errors.New("form is not published")
)

// State is the lifecycle state of a Session.
type State int

// Session states.
const (
	StateLoading State = iota
	StateEditing
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEditing:
		return "editing"
	case StateNotFound:
		return "not found"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for timestamps and the save timer.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithDelay sets the debounce quiet period.
func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithModel sets the document model used for mutations.
func WithModel(m *form.Model) Option {
	return func(s *Session) { s.model = m }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session is an editing session for one document. It is safe for use by
// one caller while the save timer runs on another goroutine.
type Session struct {
	mu    sync.Mutex
	store store.Store
	model *form.Model
	clock clock.Clock
	delay time.Duration
	log   *slog.Logger

	state    State
	closed   bool
	doc      model.Document
	selected string

	lastSaved string
	pending   clock.Timer
	gen       uint64
	saveErr   error
}

// Open starts a session. An empty id starts a fresh, unsaved document. An
// id the store does not know yields a session in StateNotFound.
func Open(ctx context.Context, st store.Store, id string, opts ...Option) (*Session, error) {
	s := &Session{
		store: st,
		clock: clock.Real{},
		delay: DefaultDelay,
		log:   logger.WithComponent("builder"),
		state: StateLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.model == nil {
		s.model = &form.Model{Clock: s.clock, NewID: uuid.NewString}
	}

	if id == "" {
		s.doc = s.model.CreateDocument()
		s.lastSaved = fingerprint(s.doc)
		s.state = StateEditing
		return s, nil
	}

	doc, err := st.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		s.state = StateNotFound
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	s.doc = doc
	s.lastSaved = fingerprint(doc)
	s.state = StateEditing
	return s, nil
}

// State returns the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Document returns a copy of the document being edited.
func (s *Session) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Dirty reports whether the document differs from what was last saved.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateEditing && fingerprint(s.doc) != s.lastSaved
}

// Selected returns the field selected for editing, if any.
func (s *Session) Selected() (model.Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return model.Field{}, false
	}
	si, fi, ok := form.FindField(s.doc, s.selected)
	if !ok {
		return model.Field{}, false
	}
	return s.doc.Steps[si].Fields[fi].Clone(), true
}

// Select marks a field as selected. It reports whether the field exists.
func (s *Session) Select(fieldID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, ok := form.FindField(s.doc, fieldID); !ok {
		return false
	}
	s.selected = fieldID
	return true
}

// Deselect clears the field selection.
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

func (s *Session) editableLocked() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != StateEditing {
		return fmt.Errorf("%w (state %s)", ErrNotEditing, s.state)
	}
	return nil
}

// mutate applies fn to the current document and schedules a save.
func (s *Session) mutate(fn func(model.Document) (model.Document, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	next, err := fn(s.doc)
	if err != nil {
		return err
	}
	s.doc = next
	s.scheduleLocked()
	return nil
}

func (s *Session) cancelLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.gen++
}

func (s *Session) scheduleLocked() {
	s.cancelLocked()
	if fingerprint(s.doc) == s.lastSaved {
		return
	}
	gen := s.gen
	s.pending = s.clock.AfterFunc(s.delay, func() { s.fire(gen) })
}

func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.closed {
		return
	}
	s.pending = nil
	if err := s.saveLocked(context.Background(), false); err != nil {
		s.saveErr = err
		s.log.Error("autosave failed", "form", s.doc.ID, "error", err)
	}
}

// saveLocked persists the document unless its content matches the last
// persisted value. force skips that check.
func (s *Session) saveLocked(ctx context.Context, force bool) error {
	fp := fingerprint(s.doc)
	if !force && fp == s.lastSaved {
		return nil
	}

	out := s.doc.Clone()
	out.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, out); err != nil {
		return fmt.Errorf("failed to save form %q: %w", out.ID, err)
	}
	s.doc.UpdatedAt = out.UpdatedAt
	s.lastSaved = fp
	s.log.Debug("form saved", "form", out.ID, "published", out.IsPublished)
	return nil
}

// fingerprint is the document's content with UpdatedAt cleared.
func fingerprint(doc model.Document) string {
	doc.UpdatedAt = time.Time{}
	b, err := json.Marshal(doc)
	if err != nil {
		return "!" + err.Error()
	}
	return string(b)
}

// AddField appends a field of type typ to the current step and selects it.
func (s *Session) AddField(typ model.FieldType) (model.Field, error) {
	var added model.Field
	err := s.mutate(func(doc model.Document) (model.Document, error) {
		out, f, err := s.model.AddField(doc, doc.CurrentStepIndex, typ)
		added = f
		return out, err
	})
	if err != nil {
		return model.Field{}, err
	}
	s.mu.Lock()
	s.selected = added.ID
	s.mu.Unlock()
	return added, nil
}

// UpdateField merges p onto the field with the given id.
func (s *Session) UpdateField(fieldID string, p form.FieldPatch) error {
	return s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.UpdateField(doc, fieldID, p), nil
	})
}

// DeleteField removes a field and clears the selection if it pointed there.
func (s *Session) DeleteField(fieldID string) error {
	err := s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.DeleteField(doc, fieldID), nil
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.selected == fieldID {
		s.selected = ""
	}
	s.mu.Unlock()
	return nil
}

// ReorderField moves a field within the current step.
func (s *Session) ReorderField(from, to int) error {
	return s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.ReorderField(doc, doc.CurrentStepIndex, from, to)
	})
}

// AddStep appends a step. An empty title becomes "Step N".
func (s *Session) AddStep(title string) (model.Step, error) {
	var added model.Step
	err := s.mutate(func(doc model.Document) (model.Document, error) {
		out, st := s.model.AddStep(doc, title)
		added = st
		return out, nil
	})
	return added, err
}

// UpdateStep merges p onto the step at index.
func (s *Session) UpdateStep(index int, p form.StepPatch) error {
	return s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.UpdateStep(doc, index, p)
	})
}

// DeleteStep removes the step at index.
func (s *Session) DeleteStep(index int) error {
	return s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.DeleteStep(doc, index)
	})
}

// SelectStep moves the editing cursor.
func (s *Session) SelectStep(index int) error {
	return s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.SelectStep(doc, index)
	})
}

// UpdateMeta merges p onto the document title and description.
func (s *Session) UpdateMeta(p form.MetaPatch) error {
	return s.mutate(func(doc model.Document) (model.Document, error) {
		return s.model.UpdateMeta(doc, p), nil
	})
}

// Publish marks the document published and saves it now, cancelling any
// pending automatic save.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return err
	}
	s.cancelLocked()
	s.doc = s.model.Publish(s.doc)
	return s.saveLocked(ctx, true)
}

// ShareURL returns the public link of a published document.
func (s *Session) ShareURL(baseURL string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return "", fmt.Errorf("%w (state %s)", ErrNotEditing, s.state)
	}
	if !s.doc.IsPublished {
		return "", ErrNotPublished
	}
	return share.URL(baseURL, s.doc.ID)
}

// Flush saves any unsaved change now. It also reports a failed automatic
// save that happened since the last call.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked(ctx)
}

func (s *Session) flushLocked(ctx context.Context) error {
	if s.closed || s.state != StateEditing {
		return nil
	}
	s.cancelLocked()
	prev := s.saveErr
	s.saveErr = nil
	return errors.Join(prev, s.saveLocked(ctx, false))
}

// Err returns the error of the last failed automatic save, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// Close flushes unsaved changes and ends the session.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	err := s.flushLocked(ctx)
	s.cancelLocked()
	s.closed = true
	return err
}

// Discard ends the session without saving. Changes already persisted by an
// automatic save are kept; anything still pending is dropped.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.closed = true
}
