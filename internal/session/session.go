// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the administrator's authenticated session for the
// lifetime of the process and persists it across runs.
//
// There is exactly one session per running CLI instance. It is established by a
// successful login, torn down by logout or a server-signaled token invalidation,
// and written through to storage on every mutation so a later invocation resumes
// where the previous one left off. Storage failures degrade to in-memory-only
// operation; session continuity is a convenience, not a correctness requirement.
package session

import (
	"encoding/json"
	"sync"

	"craftlink/adminctl/internal/logging"
)

// Session is the current administrator identity. The zero value is the
// unauthenticated session.
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	LoggedIn bool   `json:"logged_in"`
}

// Store owns the in-memory session and its write-through persistence.
// It is safe for concurrent use; readers always observe a consistent snapshot.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	cur      Session
	onChange func(Session)
}

// NewStore creates a Store seeded from the backend. Missing or corrupt
// persisted state yields the unauthenticated session without error.
func NewStore(b Backend) *Store {
	s := &Store{backend: b}
	s.cur = s.load()
	return s
}

// load reads persisted state. Absent or unparseable data falls back silently
// to the zero session so a broken state file never locks the operator out.
func (s *Store) load() Session {
	var sess Session
	if s.backend == nil {
		return sess
	}
	data, err := s.backend.Load()
	if err != nil {
		logging.L().Debug().Err(err).Msg("session storage unavailable, starting unauthenticated")
		return Session{}
	}
	if len(data) == 0 {
		return Session{}
	}
	if err := json.Unmarshal(data, &sess); err != nil {
		logging.L().Debug().Err(err).Msg("discarding unparseable session state")
		return Session{}
	}
	return sess
}

// Get returns a snapshot of the current session.
func (s *Store) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Establish replaces the session with an authenticated one and persists it.
// Token format is opaque to this layer; callers pass whatever the login
// response carried.
func (s *Store) Establish(id, name, email, token string) {
	s.set(Session{ID: id, Name: name, Email: email, Token: token, LoggedIn: true})
}

// Teardown resets the session to the unauthenticated value and persists it.
// Dependents registered via OnChange observe the new state before Teardown
// returns, so subsequent reads anywhere see the logged-out session.
func (s *Store) Teardown() {
	s.set(Session{})
}

// OnChange registers a callback invoked after every mutation with the new
// snapshot. At most one callback is held; the last registration wins.
func (s *Store) OnChange(fn func(Session)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) set(sess Session) {
	s.mu.Lock()
	s.cur = sess
	fn := s.onChange
	s.mu.Unlock()

	s.persist(sess)
	if fn != nil {
		fn(sess)
	}
}

// persist writes the session through to storage synchronously. A reload
// re-derives the in-memory value solely from storage, so memory and disk must
// never be observably out of sync. Write failures are logged and ignored.
func (s *Store) persist(sess Session) {
	if s.backend == nil {
		return
	}
	if !sess.LoggedIn {
		if err := s.backend.Clear(); err != nil {
			logging.L().Warn().Err(err).Msg("could not clear persisted session")
		}
		return
	}
	data, err := json.Marshal(sess)
	if err != nil {
		logging.L().Warn().Err(err).Msg("could not serialize session")
		return
	}
	if err := s.backend.Save(data); err != nil {
		logging.L().Warn().Err(err).Msg("could not persist session, continuing in-memory only")
	}
}
