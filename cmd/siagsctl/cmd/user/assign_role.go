package user

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
)

var assignRoleCmd = &cobra.Command{
	Use:   "assign-role <id> <role>",
	Short: "Grant a role to a user",
	Long: `Grant a role to an existing user account. Run 'siagsctl auth' against
the server to see which roles exist; typical values are ROLE_ADMIN,
ROLE_MEDECIN, ROLE_INFIRMIER and ROLE_RECEPTIONNISTE.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(adminRoles, nil); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		role := args[1]

		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		// Validate against the server's role list when available; a failure to
		// fetch the list is not fatal, the assignment itself will be rejected
		// with a clearer error if the role is unknown.
		if available, err := client.AvailableRoles(cmd.Context()); err == nil && len(available) > 0 {
			found := false
			for _, r := range available {
				if strings.EqualFold(r, role) {
					role = r
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown role %q; available: %s", role, strings.Join(available, ", "))
			}
		}

		if err := client.AssignRole(cmd.Context(), id, role); err != nil {
			return err
		}
		pterm.Success.Printfln("Granted %s to user #%d", role, id)
		return nil
	},
}
