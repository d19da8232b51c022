// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"craftlink/adminctl/internal/backend"
	"craftlink/adminctl/internal/httperrors"
	"craftlink/adminctl/internal/render"
)

// dashboardCmd is the authenticated landing view: pending counts for both
// applicant types, drawn as a bar chart.
var dashboardCmd = &cobra.Command{
	Use:               "dashboard",
	Aliases:           []string{"dash"},
	Short:             "Show pending verification counts",
	PersistentPreRunE: requireLogin,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()

		spinner, _ := pterm.DefaultSpinner.Start("Fetching pending requests")
		sum, err := a.gateway.Summary(cmd.Context())
		if err != nil {
			spinner.Fail("Could not fetch pending requests")
			return presentFetchError(err, "fetching the dashboard")
		}
		_ = spinner.Stop()

		return render.DashboardChart(sum)
	},
}

// presentFetchError renders a friendly message for a failed backend read and
// returns the error for the exit code. Session invalidation has already shown
// its own instructions by the time this runs.
func presentFetchError(err error, context string) error {
	if errors.Is(err, backend.ErrSessionInvalidated) {
		return err
	}
	var httpErr *backend.HTTPError
	if errors.As(err, &httpErr) {
		pterm.Printf("❌ The verification service rejected the request: %s\n", httpErr.Message)
		return err
	}
	return httperrors.FormatNetworkError(err, context)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
