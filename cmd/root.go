// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Craftlink admin
// console. It implements subcommands for authentication and verification
// review using the Cobra framework, with pterm for terminal output.
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"craftlink/adminctl/internal/auth"
	"craftlink/adminctl/internal/backend"
	"craftlink/adminctl/internal/config"
	"craftlink/adminctl/internal/logging"
	"craftlink/adminctl/internal/session"
)

// Version is the CLI version, overridable at build time.
var Version = "1.0.0"

var showVersion bool

// app bundles the process-wide core: one session store shared by the gateway
// and the guard, both holding a reference to the same instance.
type app struct {
	cfg     config.Config
	store   *session.Store
	gateway *backend.HTTP
	service *auth.Service
	guard   *auth.Guard
}

var shared *app

// getApp lazily wires the core once per process. The gateway's invalidation
// callback is the CLI's "return to login": it tells the operator to
// re-authenticate, since a terminal has no page to navigate away from.
func getApp() *app {
	if shared != nil {
		return shared
	}

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the operator out entirely.
		cfg = config.Config{BaseURL: config.DefaultBaseURL, LogLevel: "info"}
	}
	logging.Setup(cfg.LogLevel)

	store := session.NewStore(session.NewDefaultBackend())
	gw := backend.New(config.ResolveBaseURL(cfg), store)
	gw.OnSessionInvalidated(func() {
		pterm.Println()
		pterm.Println("⚠️  Your session has expired or was revoked by the server.")
		pterm.Println("   Run 'adminctl login' to sign in again.")
	})

	shared = &app{
		cfg:     cfg,
		store:   store,
		gateway: gw,
		service: auth.NewService(store, gw),
		guard:   auth.NewGuard(store),
	}
	return shared
}

// requireLogin is the PersistentPreRunE guard for protected commands. It is a
// synchronous check of the local session state only; no backend call is made
// before it passes.
func requireLogin(cmd *cobra.Command, args []string) error {
	if err := getApp().guard.Require(); err != nil {
		pterm.Println("🔒 You're not logged in yet!")
		pterm.Println("   Run 'adminctl login' to get started.")
		return err
	}
	return nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "adminctl",
	Short:         "Craftlink admin console for identity verification review",
	Long:          `adminctl is the Craftlink administrator console. It lists pending client and engineer identity-verification requests, shows the uploaded documents, and submits accept/reject decisions back to the verification service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("adminctl %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("adminctl", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
