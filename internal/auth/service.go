// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth ties the session store and the backend gateway together: it
// validates credentials, performs the login exchange, establishes and tears
// down the session, and gates protected commands on login state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"craftlink/adminctl/internal/backend"
	"craftlink/adminctl/internal/session"
)

// reEmail mirrors the login form's address check. Validation failures never
// reach the gateway.
var reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Credential validation errors, reported before any network call.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("enter a valid email")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordLength   = errors.New("password must be 8 to 20 characters")
)

// Service centralizes authentication operations for the CLI.
type Service struct {
	store *session.Store
	be    backend.API
}

// NewService constructs an auth Service over the shared store and gateway.
func NewService(store *session.Store, be backend.API) *Service {
	return &Service{store: store, be: be}
}

// ValidateCredentials applies the client-side login checks.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !reEmail.MatchString(email) {
		return ErrEmailInvalid
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 8 || len(password) > 20 {
		return ErrPasswordLength
	}
	return nil
}

// Login validates the credentials, exchanges them for an identity, and
// establishes the session from the response. Session writes happen here, not
// in the gateway; the gateway only ever reads the token.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return session.Session{}, err
	}
	id, err := s.be.LoginAdmin(ctx, email, password)
	if err != nil {
		return session.Session{}, fmt.Errorf("login: %w", err)
	}
	s.store.Establish(id.ID, id.Name, id.Email, id.Token)
	return s.store.Get(), nil
}

// Logout tears the session down. Token invalidation is purely local; the
// backend holds no server-side session to revoke.
func (s *Service) Logout() {
	s.store.Teardown()
}

// WhoAmI returns the current session snapshot and whether it is authenticated.
func (s *Service) WhoAmI() (session.Session, bool) {
	sess := s.store.Get()
	return sess, sess.LoggedIn
}
