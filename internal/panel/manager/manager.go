// Package manager drives list, create, edit and delete for one admin
// resource. Every content section shares it; only the Config differs.
package manager

import (
	"context"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Record is anything the server stores under an id.
type Record interface {
	RecordID() string
}

// Store is the remote collection. *recordstore.Resource satisfies it.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields map[string]any) (T, error)
	Update(ctx context.Context, id string, fields map[string]any) (T, error)
	Delete(ctx context.Context, id string) error
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type Option func(*options)

type options struct {
	log *zap.Logger
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// Manager owns the local copy of a collection and the single draft slot.
// The lock is never held across a network call; the Saving and Deleting
// states keep a second save or delete from starting meanwhile.
type Manager[T Record] struct {
	cfg     Config
	store   Store[T]
	notify  Notifier
	confirm Confirmer
	log     *zap.Logger

	mu      sync.Mutex
	state   State
	items   []T
	draft   *Draft
	pending string
	busy    bool
}

func New[T Record](cfg Config, store Store[T], notify Notifier, confirm Confirmer, opts ...Option) *Manager[T] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[T]{
		cfg:     cfg,
		store:   store,
		notify:  notify,
		confirm: confirm,
		log:     o.log.With(zap.String("resource", cfg.Resource)),
		items:   []T{},
	}
}

func (m *Manager[T]) Config() Config { return m.cfg }

func (m *Manager[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Items returns a copy of the collection as last loaded.
func (m *Manager[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Draft returns a copy of the current draft.
func (m *Manager[T]) Draft() (Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.draft == nil {
		return Draft{}, false
	}
	return m.draft.clone(), true
}

// LoadAll replaces the collection with the server's. On failure the
// previous collection stays.
func (m *Manager[T]) LoadAll(ctx context.Context) error {
	items, err := m.store.List(ctx)
	if err != nil {
		m.log.Warn("load failed", zap.Error(err))
		m.notify.Error("Failed to fetch " + m.cfg.Resource)
		return err
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	return nil
}

// BeginCreate opens an empty draft. replaced reports that an existing
// draft was discarded.
func (m *Manager[T]) BeginCreate() (replaced bool, err error) {
	return m.begin(emptyDraft(m.cfg))
}

// BeginEdit opens a draft holding rec's current values.
func (m *Manager[T]) BeginEdit(rec T) (replaced bool, err error) {
	d, err := draftFrom(m.cfg, rec)
	if err != nil {
		return false, err
	}
	return m.begin(d)
}

// BeginEditID is BeginEdit for a record of the loaded collection.
func (m *Manager[T]) BeginEditID(id string) (replaced bool, err error) {
	rec, ok := m.find(id)
	if !ok {
		return false, ErrNotFound
	}
	return m.BeginEdit(rec)
}

func (m *Manager[T]) begin(d Draft) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case Idle, Drafting:
	default:
		return false, ErrInvalidState
	}

	replaced := m.state == Drafting
	m.draft = &d
	m.state = Drafting
	return replaced, nil
}

func (m *Manager[T]) UpdateDraftField(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Drafting {
		return ErrInvalidState
	}
	if _, ok := m.cfg.field(name); !ok {
		return ErrUnknownField
	}
	m.draft.Values[name] = value
	return nil
}

// Save validates the draft and sends it. A draft with an id updates that
// record, otherwise a new one is created. On failure the draft is kept.
func (m *Manager[T]) Save(ctx context.Context) error {
	m.mu.Lock()
	if m.state != Drafting {
		m.mu.Unlock()
		return ErrInvalidState
	}
	d := m.draft.clone()
	if errs := check(m.cfg, d); len(errs) > 0 {
		m.mu.Unlock()
		verr := &ValidationError{Label: m.cfg.Label, Fields: errs}
		m.notify.Error(verr.Error())
		return verr
	}
	m.state = Saving
	m.mu.Unlock()

	body := payload(m.cfg, d)
	var err error
	if d.IsNew() {
		_, err = m.store.Create(ctx, body)
	} else {
		_, err = m.store.Update(ctx, d.ID, body)
	}

	if err != nil {
		m.log.Warn("save failed", zap.String("id", d.ID), zap.Error(err))
		m.mu.Lock()
		m.state = Drafting
		m.mu.Unlock()
		m.notify.Error("Failed to save " + m.cfg.Label)
		return err
	}

	_ = m.LoadAll(ctx)

	m.mu.Lock()
	m.draft = nil
	m.state = Idle
	m.mu.Unlock()

	if d.IsNew() {
		m.notify.Success(title(m.cfg.Label) + " created successfully")
	} else {
		m.notify.Success(title(m.cfg.Label) + " updated successfully")
	}
	return nil
}

// Cancel drops the draft without a request.
func (m *Manager[T]) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case Idle:
		return nil
	case Drafting:
		m.draft = nil
		m.state = Idle
		return nil
	}
	return ErrInvalidState
}

// DeletePrompt is the question put to the operator before a delete.
func (m *Manager[T]) DeletePrompt() string {
	return "Are you sure you want to delete this " + m.cfg.Label + "?"
}

// RequestDelete marks a loaded record for deletion and waits for
// ConfirmDelete or DeclineDelete.
func (m *Manager[T]) RequestDelete(id string) error {
	if _, ok := m.find(id); !ok {
		return ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Idle {
		return ErrInvalidState
	}
	m.pending = id
	m.state = Deleting
	return nil
}

func (m *Manager[T]) ConfirmDelete(ctx context.Context) error {
	m.mu.Lock()
	if m.state != Deleting || m.busy {
		m.mu.Unlock()
		return ErrInvalidState
	}
	id := m.pending
	m.busy = true
	m.mu.Unlock()

	err := m.store.Delete(ctx, id)
	if err == nil {
		_ = m.LoadAll(ctx)
	}

	m.mu.Lock()
	m.busy = false
	m.pending = ""
	m.state = Idle
	m.mu.Unlock()

	if err != nil {
		m.log.Warn("delete failed", zap.String("id", id), zap.Error(err))
		m.notify.Error("Failed to delete " + m.cfg.Label)
		return err
	}
	m.notify.Success(title(m.cfg.Label) + " deleted successfully")
	return nil
}

func (m *Manager[T]) DeclineDelete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Deleting || m.busy {
		return ErrInvalidState
	}
	m.pending = ""
	m.state = Idle
	return nil
}

// Delete asks the Confirmer and deletes on yes. A no is not an error.
func (m *Manager[T]) Delete(ctx context.Context, id string) error {
	if err := m.RequestDelete(id); err != nil {
		return err
	}
	if !m.confirm.Confirm(m.DeletePrompt()) {
		return m.DeclineDelete()
	}
	return m.ConfirmDelete(ctx)
}

// Snapshot is a read-only view used by front ends.
type Snapshot[T any] struct {
	Resource string
	State    State
	Items    []T
	Draft    *Draft
}

func (m *Manager[T]) Snapshot() any {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot[T]{
		Resource: m.cfg.Resource,
		State:    m.state,
		Items:    make([]T, len(m.items)),
	}
	copy(s.Items, m.items)
	if m.draft != nil {
		d := m.draft.clone()
		s.Draft = &d
	}
	return s
}

func (m *Manager[T]) find(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
