// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"craftlink/adminctl/internal/render"
)

// clientsCmd lists pending client verification requests.
var clientsCmd = &cobra.Command{
	Use:               "clients",
	Short:             "List pending client verification requests",
	PersistentPreRunE: requireLogin,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()

		spinner, _ := pterm.DefaultSpinner.Start("Fetching client requests")
		reqs, err := a.gateway.ListClientRequests(cmd.Context())
		if err != nil {
			spinner.Fail("Could not fetch client requests")
			return presentFetchError(err, "listing client requests")
		}
		_ = spinner.Stop()

		pterm.Printf("Total pending clients: %d\n\n", len(reqs))
		if len(reqs) == 0 {
			pterm.Println("Nothing to review 🎉")
			return nil
		}
		if err := render.RequestTable(reqs); err != nil {
			return err
		}
		pterm.Println()
		pterm.Println("Run 'adminctl review <id>' to inspect a request.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}
