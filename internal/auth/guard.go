// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"errors"

	"craftlink/adminctl/internal/session"
)

// ErrNotAuthenticated is returned by Guard.Require for unauthenticated
// sessions. Commands translate it into login instructions.
var ErrNotAuthenticated = errors.New("not logged in")

// Guard gates protected commands on the current session state. The check is a
// pure synchronous function of the store snapshot; token validity is never
// confirmed up front with the server, it is discovered reactively the first
// time a guarded command's backend call comes back with the invalid-token
// signal.
type Guard struct {
	store *session.Store
}

// NewGuard creates a Guard over the shared store.
func NewGuard(store *session.Store) *Guard {
	return &Guard{store: store}
}

// Require returns ErrNotAuthenticated when no session is established.
// Protected commands call it before issuing any backend request.
func (g *Guard) Require() error {
	if !g.store.Get().LoggedIn {
		return ErrNotAuthenticated
	}
	return nil
}

// LoggedIn reports the current login state. The login entry point uses it for
// the inverse check: an already-authenticated administrator is sent back to
// the landing view instead of the login form.
func (g *Guard) LoggedIn() bool {
	return g.store.Get().LoggedIn
}
