package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/pkg/sdk"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}
		if err := sdk.Logout(store); err != nil {
			return err
		}
		pterm.Success.Println("Logged out.")
		return nil
	},
}
