package user

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/view"
	"github.com/siags/siagsctl/pkg/sdk"
)

var adminRoles = []string{"ROLE_ADMIN"}

var userInput sdk.UserInput

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(adminRoles, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching users",
			func(ctx context.Context) ([]sdk.User, error) {
				return client.ListUsers(ctx)
			},
			func(users []sdk.User) {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLES")
				for _, u := range users {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
						u.ID, u.Username, u.Email, strings.Join(u.Roles, ","))
				}
				w.Flush()
			},
		)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(adminRoles, nil); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching user",
			func(ctx context.Context) (*sdk.User, error) {
				return client.GetUser(ctx, id)
			},
			func(u *sdk.User) {
				pterm.DefaultSection.Printfln("User #%d", u.ID)
				pterm.DefaultTable.WithData([][]string{
					{"Username", u.Username},
					{"Full name", u.FullName},
					{"Email", u.Email},
					{"Roles", strings.Join(u.Roles, ", ")},
				}).Render()
			},
		)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(adminRoles, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		created, err := client.CreateUser(cmd.Context(), userInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Created user #%d (%s)", created.ID, created.Username)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(adminRoles, nil); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		updated, err := client.UpdateUser(cmd.Context(), id, userInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Updated user #%d (%s)", updated.ID, updated.Username)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(adminRoles, nil); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}
		if err := client.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printfln("Deleted user #%d", id)
		return nil
	},
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&userInput.Username, "username", "", "username")
	cmd.Flags().StringVar(&userInput.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&userInput.Email, "email", "", "email address")
	cmd.Flags().StringVar(&userInput.Password, "password", "", "password")
	cmd.Flags().StringSliceVar(&userInput.Roles, "role", nil, "role(s) to grant")
}

func init() {
	addInputFlags(createCmd)
	addInputFlags(updateCmd)
	createCmd.MarkFlagRequired("username")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("password")
	updateCmd.MarkFlagRequired("username")
	updateCmd.MarkFlagRequired("email")
}
