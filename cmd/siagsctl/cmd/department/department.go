// Package department implements the 'siagsctl department' command group.
package department

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// DepartmentCmd is the parent command for department operations.
var DepartmentCmd = &cobra.Command{
	Use:   "department",
	Short: "Manage hospital departments",
}

func init() {
	DepartmentCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}
