// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"

	"craftlink/adminctl/internal/logging"
)

// loginRequest is the POST /login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginAdmin calls POST /login with the administrator's credentials.
// On success the backend returns the identity record with a fresh bearer
// token. The gateway does not establish the session itself; the auth service
// does that with the returned identity.
func (h *HTTP) LoginAdmin(ctx context.Context, email, password string) (Identity, error) {
	var id Identity
	err := h.do(ctx, "POST", pathLogin, loginRequest{Email: email, Password: password}, &id)
	if err != nil {
		return Identity{}, err
	}
	logging.L().Debug().Str("admin", id.Email).Msg("login accepted")
	return id, nil
}
