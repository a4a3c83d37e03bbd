// Package admission implements the 'siagsctl admission' command group.
package admission

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// AdmissionCmd is the parent command for admission operations.
var AdmissionCmd = &cobra.Command{
	Use:   "admission",
	Short: "Manage hospital admissions",
}

func init() {
	AdmissionCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}
