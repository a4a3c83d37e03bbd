package auth

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		creds, err := cfg.Provider.Credentials()
		if err != nil {
			return err
		}
		if creds == nil {
			pterm.Info.Println("Not logged in. Run `siagsctl auth login`.")
			return nil
		}

		pterm.DefaultSection.Println("Session")
		data := [][]string{
			{"Username", creds.Username},
			{"Email", creds.Email},
			{"Roles", strings.Join(creds.Roles, ", ")},
		}
		if len(creds.Permissions) > 0 {
			data = append(data, []string{"Permissions", strings.Join(creds.Permissions, ", ")})
		}
		return pterm.DefaultTable.WithData(data).Render()
	},
}
