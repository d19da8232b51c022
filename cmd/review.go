// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"craftlink/adminctl/internal/render"
	"craftlink/adminctl/internal/verify"
)

var (
	reviewAccept  bool
	reviewReject  bool
	reviewRemarks string
	reviewYes     bool
)

// reviewCmd shows one verification request in full and optionally submits a
// decision. The backend exposes no single-request endpoint; details come from
// the pending lists, the same payload the list views already hold.
var reviewCmd = &cobra.Command{
	Use:   "review <request-id>",
	Short: "Inspect a verification request and submit a decision",
	Long: `The review command shows a pending request's personal information and
uploaded document slots. With --accept or --reject it submits the decision,
optionally with remarks for the applicant:

  adminctl review c-1a2b3c4d --reject --remarks "ID photo is unreadable"

Without a decision flag it only displays the request.`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireLogin,

	RunE: func(cmd *cobra.Command, args []string) error {
		if reviewAccept && reviewReject {
			return errors.New("--accept and --reject are mutually exclusive")
		}

		a := getApp()
		id := args[0]

		spinner, _ := pterm.DefaultSpinner.Start("Fetching request")
		req, err := findRequest(cmd.Context(), id)
		if err != nil {
			spinner.Fail("Could not fetch request")
			return presentFetchError(err, "fetching the request")
		}
		_ = spinner.Stop()
		if req == nil {
			return fmt.Errorf("no pending verification request with id %s", id)
		}

		render.Details(*req)

		if !reviewAccept && !reviewReject {
			return nil
		}

		status := verify.StatusAccepted
		if reviewReject {
			status = verify.StatusRejected
		}

		if !reviewYes {
			ok, err := pterm.DefaultInteractiveConfirm.
				WithDefaultText(fmt.Sprintf("Mark %s as %s?", req.FullName(), status)).
				Show()
			if err != nil {
				return err
			}
			if !ok {
				pterm.Println("Decision discarded.")
				return nil
			}
		}

		updated, err := a.gateway.PatchRequestStatus(cmd.Context(), id, verify.NewDecision(status, reviewRemarks))
		if err != nil {
			return presentFetchError(err, "submitting the decision")
		}
		render.Decision(updated)
		return nil
	},
}

// findRequest looks the id up in both pending lists.
func findRequest(ctx context.Context, id string) (*verify.Request, error) {
	a := getApp()
	clients, err := a.gateway.ListClientRequests(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	engineers, err := a.gateway.ListEngineerRequests(ctx)
	if err != nil {
		return nil, err
	}
	for i := range engineers {
		if engineers[i].ID == id {
			return &engineers[i], nil
		}
	}
	return nil, nil
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().BoolVar(&reviewAccept, "accept", false, "Accept the request")
	reviewCmd.Flags().BoolVar(&reviewReject, "reject", false, "Reject the request")
	reviewCmd.Flags().StringVar(&reviewRemarks, "remarks", "", "Optional remarks sent with the decision")
	reviewCmd.Flags().BoolVar(&reviewYes, "yes", false, "Skip the confirmation prompt")
}
