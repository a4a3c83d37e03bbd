package department

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/view"
	"github.com/siags/siagsctl/pkg/sdk"
)

var departmentName string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching departments",
			func(ctx context.Context) ([]sdk.Department, error) {
				return client.ListDepartments(ctx)
			},
			func(departments []sdk.Department) {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME")
				for _, d := range departments {
					fmt.Fprintf(w, "%d\t%s\n", d.ID, d.Name)
				}
				w.Flush()
			},
		)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
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

		return view.Run(cmd.Context(), "Fetching department",
			func(ctx context.Context) (*sdk.Department, error) {
				return client.GetDepartment(ctx, id)
			},
			func(d *sdk.Department) {
				pterm.Printfln("#%d  %s", d.ID, d.Name)
			},
		)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a department",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess([]string{"ROLE_ADMIN"}, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		created, err := client.CreateDepartment(cmd.Context(), sdk.DepartmentInput{Name: departmentName})
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Created department #%d (%s)", created.ID, created.Name)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess([]string{"ROLE_ADMIN"}, nil); err != nil {
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

		updated, err := client.UpdateDepartment(cmd.Context(), id, sdk.DepartmentInput{Name: departmentName})
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Updated department #%d (%s)", updated.ID, updated.Name)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess([]string{"ROLE_ADMIN"}, nil); err != nil {
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
		if err := client.DeleteDepartment(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printfln("Deleted department #%d", id)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&departmentName, "name", "", "department name")
	createCmd.MarkFlagRequired("name")
	updateCmd.Flags().StringVar(&departmentName, "name", "", "department name")
	updateCmd.MarkFlagRequired("name")
}
