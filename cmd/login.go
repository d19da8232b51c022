// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"net/http"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"craftlink/adminctl/internal/auth"
	"craftlink/adminctl/internal/backend"
	"craftlink/adminctl/internal/httperrors"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd authenticates the administrator against the verification service.
// Credentials can be passed as flags or entered interactively; validation
// runs client-side before any network call.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate as a Craftlink administrator",
	Long: `The login command authenticates against the Craftlink verification service
and stores the resulting session locally, so subsequent commands run without
re-entering credentials.

If already logged in, the command short-circuits; run 'adminctl logout' first
to switch accounts.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()

		// Inverse guard: an authenticated administrator is sent on, not
		// back through the login form.
		if sess, ok := a.service.WhoAmI(); ok {
			pterm.Printf("Already logged in as %s\n", sess.Email)
			pterm.Println("Run 'adminctl dashboard' to see pending requests.")
			return nil
		}

		email := loginEmail
		if email == "" {
			var err error
			email, err = pterm.DefaultInteractiveTextInput.
				WithDefaultText("Email").
				Show()
			if err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			var err error
			password, err = pterm.DefaultInteractiveTextInput.
				WithDefaultText("Password").
				WithMask("*").
				Show()
			if err != nil {
				return err
			}
		}

		if err := auth.ValidateCredentials(email, password); err != nil {
			pterm.Printf("❌ %s\n", err)
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Signing in")
		sess, err := a.service.Login(cmd.Context(), email, password)
		if err != nil {
			spinner.Fail("Login failed")
			var httpErr *backend.HTTPError
			if errors.As(err, &httpErr) {
				if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusBadRequest {
					pterm.Printf("❌ %s\n", httpErr.Message)
					return err
				}
				return err
			}
			return httperrors.FormatNetworkError(err, "signing in")
		}
		spinner.Success("Login successful")

		pterm.Printf("👋 Welcome back, %s!\n", sess.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Administrator email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Administrator password (prompted when omitted)")
}
