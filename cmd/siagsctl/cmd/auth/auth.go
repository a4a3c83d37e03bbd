// Package auth implements the 'siagsctl auth' command group: login, logout,
// signup and session status.
package auth

import "github.com/spf13/cobra"

// AuthCmd is the parent command for authentication operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the SIAGS session",
}

func init() {
	AuthCmd.AddCommand(loginCmd, logoutCmd, signupCmd, statusCmd)
}
