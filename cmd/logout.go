// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the stored session. Token invalidation is local only; the
// server discovers the token is stale the next time it sees it, if ever.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session",
	Long: `The logout command tears down the current session and removes it from
local storage. The next protected command will require a fresh login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, ok := a.service.WhoAmI(); !ok {
			pterm.Println("You're not logged in.")
			return nil
		}
		a.service.Logout()
		pterm.Println("✅ Session removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
