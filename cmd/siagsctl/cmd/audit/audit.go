// Package audit implements the admin-only 'siagsctl audit' command group.
package audit

import "github.com/spf13/cobra"

// AuditCmd is the parent command for audit log operations.
var AuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the audit log",
}

func init() {
	AuditCmd.AddCommand(listCmd)
}
