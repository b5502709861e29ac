// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package filler implements the respondent side of a form: step-by-step
// answer collection, per-step validation and submission.
package filler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/dacolabs/formcraft/internal/catalog"
	"github.com/dacolabs/formcraft/internal/clock"
	"github.com/dacolabs/formcraft/internal/form"
	"github.com/dacolabs/formcraft/internal/logger"
	"github.com/dacolabs/formcraft/internal/model"
	"github.com/dacolabs/formcraft/internal/store"
	"github.com/dacolabs/formcraft/internal/validation"
	"github.com/google/uuid"
)

// DemoID opens the built-in demo form instead of a stored one.
const DemoID = catalog.DemoID

var (
	// ErrNotActive indicates an answer or navigation outside StateActive.
	ErrNotActive = errors.New("form is not being filled")

	// ErrNotLastStep indicates a submit before the last step.
	ErrNotLastStep = errors.New("submit is only possible on the last step")

	// ErrUnknownField indicates an answer for a field the form does not have.
	ErrUnknownField = errors.New("unknown field")
)

// State is the lifecycle state of a Session.
type State int

// Session states.
const (
	StateLoading State = iota
	StateNotFound
	StateActive
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateNotFound:
		return "not found"
	case StateActive:
		return "active"
	case StateSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for submission timestamps.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithModel sets the document model used to record submissions.
func WithModel(m *form.Model) Option {
	return func(s *Session) { s.model = m }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithPreview opens drafts too. Preview submissions are not stored.
func WithPreview() Option {
	return func(s *Session) { s.preview = true }
}

// Session collects one respondent's answers.
type Session struct {
	mu    sync.Mutex
	store store.Store
	model *form.Model
	clock clock.Clock
	log   *slog.Logger

	preview   bool
	ephemeral bool

	state  State
	doc    model.Document
	step   int
	values map[string]any
	errors map[string][]string
	sub    model.Submission
}

// Open starts filling the form with the given id, or the demo form for
// DemoID. Unknown ids and unpublished forms yield StateNotFound.
func Open(ctx context.Context, st store.Store, id string, opts ...Option) (*Session, error) {
	s := &Session{
		store:  st,
		clock:  clock.Real{},
		log:    logger.WithComponent("filler"),
		state:  StateLoading,
		values: map[string]any{},
		errors: map[string][]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.model == nil {
		s.model = &form.Model{Clock: s.clock, NewID: uuid.NewString}
	}

	if id == DemoID {
		s.doc = catalog.Demo(s.clock.Now())
		s.ephemeral = true
		s.state = StateActive
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
	if !doc.IsPublished && !s.preview {
		s.log.Debug("form not published", "form", id)
		s.state = StateNotFound
		return s, nil
	}

	s.doc = doc
	s.ephemeral = s.preview
	s.state = StateActive
	return s, nil
}

// State returns the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Document returns a copy of the form being filled.
func (s *Session) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// StepIndex returns the index of the step being filled.
func (s *Session) StepIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Step returns the step being filled.
func (s *Session) Step() model.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Steps[s.step].Clone()
}

// StepCount returns the number of steps in the form.
func (s *Session) StepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doc.Steps)
}

// IsLastStep reports whether the current step is the last one.
func (s *Session) IsLastStep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLastLocked()
}

func (s *Session) isLastLocked() bool {
	return s.step == len(s.doc.Steps)-1
}

// Value returns the collected answer for a field.
func (s *Session) Value(fieldID string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[fieldID]
	return v, ok
}

// Values returns a copy of every collected answer.
func (s *Session) Values() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.values)
}

// Errors returns the displayed per-field errors.
func (s *Session) Errors() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.errors)
}

// Submission returns the recorded submission once the session is submitted.
func (s *Session) Submission() (model.Submission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitted {
		return model.Submission{}, false
	}
	return s.sub, true
}

func (s *Session) activeLocked() error {
	if s.state != StateActive {
		return fmt.Errorf("%w (state %s)", ErrNotActive, s.state)
	}
	return nil
}

// SetValue records an answer and clears any errors shown for that field.
// Errors for other fields stay until the step is validated again.
func (s *Session) SetValue(fieldID string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked(); err != nil {
		return err
	}
	if _, _, ok := form.FindField(s.doc, fieldID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, fieldID)
	}
	s.values[fieldID] = value
	delete(s.errors, fieldID)
	return nil
}

func (s *Session) validateLocked() validation.Result {
	res := validation.ValidateStep(s.doc.Steps[s.step].Fields, s.values)
	s.errors = res.Errors
	if s.errors == nil {
		s.errors = map[string][]string{}
	}
	return res
}

// Advance validates the current step and moves to the next one when it is
// valid. On the last step a valid result leaves the cursor in place.
func (s *Session) Advance() (validation.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked(); err != nil {
		return validation.Result{}, err
	}
	res := s.validateLocked()
	if res.Valid && !s.isLastLocked() {
		s.step++
	}
	return res, nil
}

// Back moves to the previous step and clears errors. It does nothing on the
// first step.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked(); err != nil {
		return err
	}
	if s.step > 0 {
		s.step--
	}
	s.errors = map[string][]string{}
	return nil
}

// Submit validates the last step and records the answers as a new response.
// An invalid step returns its result with a nil error and the session stays
// active. A failed save is returned and the session stays active.
func (s *Session) Submit(ctx context.Context) (validation.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked(); err != nil {
		return validation.Result{}, err
	}
	if !s.isLastLocked() {
		return validation.Result{}, fmt.Errorf("%w (step %d of %d)", ErrNotLastStep, s.step+1, len(s.doc.Steps))
	}

	res := s.validateLocked()
	if !res.Valid {
		return res, nil
	}

	doc, sub := s.model.AppendResponse(s.doc, s.values)
	if !s.ephemeral {
		if err := s.store.Save(ctx, doc); err != nil {
			return res, fmt.Errorf("failed to save response to form %q: %w", doc.ID, err)
		}
	}
	s.log.Debug("response submitted", "form", doc.ID, "response", sub.ID, "stored", !s.ephemeral)

	s.doc = doc
	s.sub = sub
	s.state = StateSubmitted
	return res, nil
}
