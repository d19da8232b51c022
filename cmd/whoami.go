package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd shows the authenticated administrator from the local session
// snapshot. No server round-trip is made; a stale token surfaces on the next
// data command instead.
var whoamiCmd = &cobra.Command{
	Use:               "whoami",
	Short:             "Show the current administrator",
	PersistentPreRunE: requireLogin,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _ := getApp().service.WhoAmI()
		pterm.Printf("👤 %s <%s>\n", sess.Name, sess.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
