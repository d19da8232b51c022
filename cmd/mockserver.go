// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"craftlink/adminctl/internal/config"
	"craftlink/adminctl/internal/mockapi"
)

var mockAddr string

// mockServerCmd runs the in-memory stand-in backend for local development and
// demos. It serves the same endpoints and the same invalid-token signal as
// the real verification service.
var mockServerCmd = &cobra.Command{
	Use:    "mock-server",
	Short:  "Run an in-memory verification backend for local development",
	Hidden: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mockapi.New()
		pterm.Printf("Mock verification backend listening on %s\n", mockAddr)
		pterm.Printf("Point the CLI at it with: %s=http://%s\n", config.EnvBaseURL, mockAddr)
		pterm.Printf("Login with %s / %s\n", mockapi.AdminEmail, mockapi.AdminPassword)
		return srv.Router().Run(mockAddr)
	},
}

func init() {
	rootCmd.AddCommand(mockServerCmd)
	mockServerCmd.Flags().StringVar(&mockAddr, "addr", "localhost:4000", "Listen address")
}
