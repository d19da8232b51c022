// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend is the authenticated gateway to the Craftlink verification
// service. Every call goes through a single client that attaches the current
// session token on the way out and watches responses for the server's
// invalid-token signal on the way in.
package backend

import (
	"context"

	"craftlink/adminctl/internal/verify"
)

// Identity is the administrator record returned by a successful login.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// API defines the backend operations the CLI depends on.
// Implementations may call the real REST endpoints or provide fakes for tests.
type API interface {
	// LoginAdmin exchanges credentials for an identity and bearer token.
	// It performs no session mutation; establishing the session from the
	// returned identity is the caller's responsibility.
	LoginAdmin(ctx context.Context, email, password string) (Identity, error)
	// ListClientRequests returns pending client verification requests.
	ListClientRequests(ctx context.Context) ([]verify.Request, error)
	// ListEngineerRequests returns pending engineer verification requests.
	ListEngineerRequests(ctx context.Context) ([]verify.Request, error)
	// PatchRequestStatus submits a reviewer decision for one request and
	// returns the updated record.
	PatchRequestStatus(ctx context.Context, id string, decision verify.Decision) (*verify.Request, error)
}
