// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"net/url"

	"craftlink/adminctl/internal/verify"
)

// ListClientRequests calls GET /clientsVerifyRequests.
func (h *HTTP) ListClientRequests(ctx context.Context) ([]verify.Request, error) {
	var out []verify.Request
	if err := h.do(ctx, "GET", pathClientRequests, nil, &out); err != nil {
		return nil, fmt.Errorf("list client requests: %w", err)
	}
	return out, nil
}

// ListEngineerRequests calls GET /engineersVerifyRequests.
func (h *HTTP) ListEngineerRequests(ctx context.Context) ([]verify.Request, error) {
	var out []verify.Request
	if err := h.do(ctx, "GET", pathEngineerRequests, nil, &out); err != nil {
		return nil, fmt.Errorf("list engineer requests: %w", err)
	}
	return out, nil
}

// PatchRequestStatus calls PATCH /verifyRequests/{id} with the reviewer
// decision and returns the updated record.
func (h *HTTP) PatchRequestStatus(ctx context.Context, id string, decision verify.Decision) (*verify.Request, error) {
	var out verify.Request
	if err := h.do(ctx, "PATCH", pathVerifyRequests+url.PathEscape(id), decision, &out); err != nil {
		return nil, fmt.Errorf("patch request %s: %w", id, err)
	}
	return &out, nil
}

// Summary fetches both pending lists and aggregates their counts for the
// dashboard. The two list calls are independent; neither depends on the
// other's effect being visible.
func (h *HTTP) Summary(ctx context.Context) (verify.Summary, error) {
	clients, err := h.ListClientRequests(ctx)
	if err != nil {
		return verify.Summary{}, err
	}
	engineers, err := h.ListEngineerRequests(ctx)
	if err != nil {
		return verify.Summary{}, err
	}
	return verify.Summary{PendingClients: len(clients), PendingEngineers: len(engineers)}, nil
}
