package auth

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/pkg/sdk"
)

var (
	signupUsername string
	signupEmail    string
	signupPassword string
	signupRoles    []string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username := signupUsername
		email := signupEmail
		password := signupPassword
		if username == "" || email == "" || password == "" {
			if cfg.NonInteractive {
				return errors.New("--username, --email and --password are required in non-interactive mode")
			}
			var err error
			if username == "" {
				if username, err = pterm.DefaultInteractiveTextInput.Show("Username"); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = pterm.DefaultInteractiveTextInput.Show("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password"); err != nil {
					return err
				}
			}
		}

		input := sdk.SignupInput{
			Username: username,
			Email:    email,
			Password: password,
			Roles:    signupRoles,
		}
		if err := sdk.Signup(cmd.Context(), cfg.ServerURL, input); err != nil {
			return err
		}

		pterm.Success.Printfln("Account %s registered. Run `siagsctl auth login` to sign in.", username)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVarP(&signupUsername, "username", "u", "", "username (prompted if omitted)")
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "email address (prompted if omitted)")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "password (prompted if omitted)")
	signupCmd.Flags().StringSliceVar(&signupRoles, "role", nil, "requested role(s), e.g. medecin, infirmier")
}
