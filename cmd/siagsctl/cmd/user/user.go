// Package user implements the admin-only 'siagsctl user' command group.
package user

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// UserCmd is the parent command for user account administration.
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Administer user accounts",
}

func init() {
	UserCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd, assignRoleCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", arg)
	}
	return id, nil
}
