package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/pkg/sdk"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username := loginUsername
		password := loginPassword
		if username == "" {
			if cfg.NonInteractive {
				return errors.New("--username is required in non-interactive mode")
			}
			var err error
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		if password == "" {
			if cfg.NonInteractive {
				return errors.New("--password is required in non-interactive mode")
			}
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}

		creds, err := sdk.Login(cmd.Context(), cfg.ServerURL, username, password, store)
		if err != nil {
			var authErr *sdk.AuthError
			if errors.As(err, &authErr) {
				switch authErr.Reason {
				case sdk.InvalidCredentials:
					return errors.New("login failed: check your username and password")
				case sdk.NetworkUnavailable:
					return fmt.Errorf("could not reach %s: %w", cfg.ServerURL, authErr.Err)
				}
			}
			return fmt.Errorf("login failed: %w", err)
		}

		pterm.Success.Printfln("Logged in as %s (%s)", creds.Username, strings.Join(creds.Roles, ", "))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username (prompted if omitted)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted if omitted)")
}
