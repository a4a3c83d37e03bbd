// Package patient implements the 'siagsctl patient' command group.
package patient

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// PatientCmd is the parent command for patient record operations.
var PatientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patient records",
}

func init() {
	PatientCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}
