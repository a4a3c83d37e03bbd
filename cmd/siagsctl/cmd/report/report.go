// Package report implements the 'siagsctl report' command group over the
// dashboard reporting endpoints.
package report

import "github.com/spf13/cobra"

// Reports are readable by administrators and by accounts granted the
// explicit reporting permission.
var reportPermissions = []string{"ROLE_ADMIN", "REPORT_READ"}

// ReportCmd is the parent command for reporting operations.
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "View dashboard reports",
}

func init() {
	ReportCmd.AddCommand(summaryCmd)
}
