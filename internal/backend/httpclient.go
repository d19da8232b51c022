// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"craftlink/adminctl/internal/logging"
	"craftlink/adminctl/internal/session"
)

// invalidTokenBody is the exact response body the backend sends alongside a
// 401 when the bearer token has been revoked or expired. Other 401s (for
// example bad login credentials) must not tear the session down.
const invalidTokenBody = "invalid token"

// Backend endpoint paths.
const (
	pathLogin            = "/login"
	pathClientRequests   = "/clientsVerifyRequests"
	pathEngineerRequests = "/engineersVerifyRequests"
	pathVerifyRequests   = "/verifyRequests/"
)

// HTTP implements API over the backend's REST endpoints.
type HTTP struct {
	baseURL      string
	store        *session.Store
	client       *http.Client
	onInvalidate func()
}

// New creates the gateway for the given base URL, reading tokens from store.
// The store reference is shared with the rest of the application; the gateway
// only ever reads it per dispatch, except for the teardown it performs when
// the server signals an invalid token.
func New(baseURL string, store *session.Store) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// OnSessionInvalidated registers a callback fired exactly once per response
// that carries the invalid-token signal. The application shell translates it
// into a return to the login entry point; the gateway itself stays free of
// navigation concerns.
func (h *HTTP) OnSessionInvalidated(fn func()) {
	h.onInvalidate = fn
}

// invalidTokenError carries both the HTTP failure and the session sentinel so
// callers can match either with errors.As / errors.Is.
type invalidTokenError struct {
	*HTTPError
}

func (e *invalidTokenError) Unwrap() []error {
	return []error{e.HTTPError, ErrSessionInvalidated}
}

// do issues one backend call. Request construction is the outgoing
// interceptor: JSON headers, a correlation id, and the bearer token from the
// session snapshot taken at dispatch. Response handling is the incoming
// interceptor: 2xx decodes into out, the 401 invalid-token sentinel tears the
// session down and notifies the shell, and every other failure is returned to
// the caller untouched.
func (h *HTTP) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := h.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	logging.L().Debug().Str("method", method).Str("path", path).Msg("backend request")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
		return nil
	}

	herr := &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}

	// The sentinel match is exact; a trailing newline or padding means the
	// body is something else.
	if resp.StatusCode == http.StatusUnauthorized && string(data) == invalidTokenBody {
		logging.L().Debug().Str("path", path).Msg("token rejected, tearing session down")
		h.store.Teardown()
		if h.onInvalidate != nil {
			h.onInvalidate()
		}
		return &invalidTokenError{HTTPError: herr}
	}

	return herr
}

// token returns the bearer token from the current session snapshot. A missing
// or logged-out session yields the empty string and the request proceeds
// without a credential; the backend rejects it and the incoming interceptor
// handles that uniformly.
func (h *HTTP) token() string {
	if h.store == nil {
		return ""
	}
	return h.store.Get().Token
}
