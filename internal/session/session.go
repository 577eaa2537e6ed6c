// Package session coordinates repository mutations and the save
// boundary for one open portfolio document. A session loads the
// document once, applies mutations in memory, and commits explicitly;
// unsaved mutations are lost when the process exits.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/folio/internal/repo"
	"github.com/mesh-intelligence/folio/internal/store"
	"github.com/mesh-intelligence/folio/pkg/types"
)

// Session is one open-document lifetime. It is not safe for concurrent
// use, and only one session should be open against a canonical path at
// a time; concurrent external edits go undetected (last writer wins).
type Session struct {
	store  *store.Store
	repo   *repo.Repository
	log    *zap.Logger
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for session events. Defaults to no-op.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// Open loads the document through the store and wraps it in a
// repository (applying the config backfill for older files). Fails with
// the store's load errors; a missing or corrupt file aborts the session.
func Open(st *store.Store, opts ...Option) (*Session, error) {
	s := &Session{store: st, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := st.Load()
	if err != nil {
		return nil, err
	}
	s.repo = repo.New(doc)
	if s.repo.Backfilled() {
		s.log.Info("backfilled default config section", zap.String("path", st.DataFile()))
	}
	return s, nil
}

// Repo returns the session's repository, the mutation surface shared by
// all front-ends. Nil after Close.
func (s *Session) Repo() *repo.Repository {
	if s.closed {
		return nil
	}
	return s.repo
}

// Apply runs one mutation against the repository. Mutations take effect
// immediately; a failed mutation leaves earlier successful ones intact
// and the session usable.
func (s *Session) Apply(fn func(*repo.Repository) error) error {
	if s.closed {
		return types.ErrSessionClosed
	}
	return fn(s.repo)
}

// Commit persists the current in-memory document with a backup of the
// previous file. A session may commit any number of times; each commit
// produces its own backup. On failure the in-memory document is
// untouched and Commit may be retried.
func (s *Session) Commit() error {
	if s.closed {
		return types.ErrSessionClosed
	}
	if err := s.store.Save(s.repo.Document(), true); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.Debug("document committed", zap.String("path", s.store.DataFile()))
	return nil
}

// View returns a read-only deep-copy snapshot of the current document,
// for front-ends to render without touching repository state.
func (s *Session) View() (*types.Document, error) {
	if s.closed {
		return nil, types.ErrSessionClosed
	}
	return s.repo.Document().Clone(), nil
}

// Close marks the session terminal. Further operations fail with
// types.ErrSessionClosed. Uncommitted mutations are discarded.
func (s *Session) Close() {
	s.closed = true
	s.repo = nil
}
