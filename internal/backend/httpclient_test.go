// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftlink/adminctl/internal/session"
	"craftlink/adminctl/internal/verify"
)

func newTestStore() *session.Store {
	return session.NewStore(nil)
}

func TestBearerAttachedWhenTokenHeld(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]verify.Request{})
	}))
	defer srv.Close()

	store := newTestStore()
	store.Establish("1", "A", "a@x.com", "abc")

	h := New(srv.URL, store)
	if _, err := h.ListClientRequests(context.Background()); err != nil {
		t.Fatalf("ListClientRequests() error: %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc")
	}
}

func TestNoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode([]verify.Request{})
	}))
	defer srv.Close()

	h := New(srv.URL, newTestStore())
	if _, err := h.ListClientRequests(context.Background()); err != nil {
		t.Fatalf("ListClientRequests() error: %v", err)
	}
	if hadAuth {
		t.Errorf("Authorization header attached without a session: %q", gotAuth)
	}
}

func TestRequestIDAndContentType(t *testing.T) {
	var gotID, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		gotCT = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(Identity{})
	}))
	defer srv.Close()

	h := New(srv.URL, newTestStore())
	if _, err := h.LoginAdmin(context.Background(), "a@x.com", "password1"); err != nil {
		t.Fatalf("LoginAdmin() error: %v", err)
	}
	if gotID == "" {
		t.Error("X-Request-Id header missing")
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotCT)
	}
}

func TestInvalidTokenSignalTearsDownOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "invalid token")
	}))
	defer srv.Close()

	store := newTestStore()
	store.Establish("1", "A", "a@x.com", "stale")

	invalidations := 0
	h := New(srv.URL, store)
	h.OnSessionInvalidated(func() { invalidations++ })

	_, err := h.ListEngineerRequests(context.Background())
	if err == nil {
		t.Fatal("expected error from invalid-token response")
	}
	if !errors.Is(err, ErrSessionInvalidated) {
		t.Errorf("error = %v, want ErrSessionInvalidated in chain", err)
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Errorf("error = %v, want HTTPError 401 in chain", err)
	}
	if s := store.Get(); s.LoggedIn || s.Token != "" {
		t.Errorf("session not torn down: %+v", s)
	}
	if invalidations != 1 {
		t.Errorf("invalidation callback fired %d times, want 1", invalidations)
	}
}

func TestPaddedSentinelBodyLeavesSessionAlone(t *testing.T) {
	for _, body := range []string{"invalid token\n", "  invalid token "} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, body)
		}))

		store := newTestStore()
		store.Establish("1", "A", "a@x.com", "tok")

		h := New(srv.URL, store)
		_, err := h.ListClientRequests(context.Background())
		if !IsStatus(err, http.StatusUnauthorized) {
			t.Fatalf("body %q: error = %v, want HTTPError 401", body, err)
		}
		if errors.Is(err, ErrSessionInvalidated) {
			t.Errorf("body %q treated as the invalid-token signal", body)
		}
		if s := store.Get(); !s.LoggedIn || s.Token != "tok" {
			t.Errorf("body %q tore the session down: %+v", body, s)
		}
		srv.Close()
	}
}

func TestOther401LeavesSessionAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "bad credentials")
	}))
	defer srv.Close()

	store := newTestStore()
	store.Establish("1", "A", "a@x.com", "tok")

	invalidations := 0
	h := New(srv.URL, store)
	h.OnSessionInvalidated(func() { invalidations++ })

	_, err := h.ListClientRequests(context.Background())
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("error = %v, want HTTPError 401", err)
	}
	if errors.Is(err, ErrSessionInvalidated) {
		t.Error("plain 401 must not carry the invalidation sentinel")
	}
	if s := store.Get(); !s.LoggedIn || s.Token != "tok" {
		t.Errorf("session mutated by plain 401: %+v", s)
	}
	if invalidations != 0 {
		t.Errorf("invalidation callback fired %d times, want 0", invalidations)
	}
}

func TestServerErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	}))
	defer srv.Close()

	store := newTestStore()
	store.Establish("1", "A", "a@x.com", "tok")

	h := New(srv.URL, store)
	_, err := h.ListClientRequests(context.Background())
	if !IsStatus(err, http.StatusInternalServerError) {
		t.Fatalf("error = %v, want HTTPError 500", err)
	}
	if s := store.Get(); !s.LoggedIn {
		t.Errorf("session mutated by 500: %+v", s)
	}
}

func TestLoginDoesNotWriteSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(Identity{
			ID: "1", Name: "A", Email: req.Email, Token: "tok123",
		})
	}))
	defer srv.Close()

	store := newTestStore()
	h := New(srv.URL, store)

	id, err := h.LoginAdmin(context.Background(), "admin@x.com", "password1")
	if err != nil {
		t.Fatalf("LoginAdmin() error: %v", err)
	}
	if id.Token != "tok123" || id.Email != "admin@x.com" {
		t.Errorf("identity = %+v", id)
	}
	// Establishing the session is the caller's job, not the gateway's.
	if s := store.Get(); s.LoggedIn {
		t.Errorf("gateway wrote the session on login: %+v", s)
	}
}

func TestPatchRequestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path != "/verifyRequests/r42" {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"status":"accepted","remarks":null}` {
			t.Errorf("patch body = %s", body)
		}
		_ = json.NewEncoder(w).Encode(verify.Request{
			ID: "r42", FirstName: "Sara", Status: verify.StatusAccepted,
		})
	}))
	defer srv.Close()

	store := newTestStore()
	store.Establish("1", "A", "a@x.com", "tok")

	h := New(srv.URL, store)
	updated, err := h.PatchRequestStatus(context.Background(), "r42", verify.NewDecision(verify.StatusAccepted, ""))
	if err != nil {
		t.Fatalf("PatchRequestStatus() error: %v", err)
	}
	if updated.Status != verify.StatusAccepted {
		t.Errorf("updated.Status = %q, want accepted", updated.Status)
	}
}

func TestSummaryAggregatesCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clientsVerifyRequests":
			_ = json.NewEncoder(w).Encode(make([]verify.Request, 3))
		case "/engineersVerifyRequests":
			_ = json.NewEncoder(w).Encode(make([]verify.Request, 2))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := New(srv.URL, newTestStore())
	sum, err := h.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if sum.PendingClients != 3 || sum.PendingEngineers != 2 || sum.Total() != 5 {
		t.Errorf("Summary() = %+v", sum)
	}
}

func TestTransportErrorWrapped(t *testing.T) {
	// Point at a closed server to force a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	h := New(srv.URL, newTestStore())
	_, err := h.ListClientRequests(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if IsStatus(err, http.StatusUnauthorized) || errors.Is(err, ErrSessionInvalidated) {
		t.Errorf("transport error misclassified: %v", err)
	}
}
