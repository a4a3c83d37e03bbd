// Package consultation implements the 'siagsctl consultation' command group.
package consultation

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ConsultationCmd is the parent command for consultation operations.
var ConsultationCmd = &cobra.Command{
	Use:   "consultation",
	Short: "Manage consultations",
}

func init() {
	ConsultationCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}
