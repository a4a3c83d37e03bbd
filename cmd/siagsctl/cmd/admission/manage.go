package admission

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/view"
	"github.com/siags/siagsctl/pkg/sdk"
)

var admissionInput sdk.AdmissionInput

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one admission",
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

		return view.Run(cmd.Context(), "Fetching admission",
			func(ctx context.Context) (*sdk.Admission, error) {
				return client.GetAdmission(ctx, id)
			},
			func(a *sdk.Admission) {
				pterm.DefaultSection.Printfln("Admission #%d", a.ID)
				pterm.DefaultTable.WithData([][]string{
					{"Patient", formatID(a.PatientID)},
					{"Department", formatID(a.DepartmentID)},
					{"Admitted", a.AdmissionDate},
					{"Discharged", a.DischargeDate},
					{"Reason", a.Reason},
					{"Status", a.Status},
				}).Render()
			},
		)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a new admission",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		created, err := client.CreateAdmission(cmd.Context(), admissionInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Created admission #%d", created.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an admission",
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

		updated, err := client.UpdateAdmission(cmd.Context(), id, admissionInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Updated admission #%d", updated.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an admission",
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
		if err := client.DeleteAdmission(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printfln("Deleted admission #%d", id)
		return nil
	},
}

func formatID(id int64) string {
	return pterm.Sprintf("#%d", id)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&admissionInput.PatientID, "patient", 0, "patient id")
	cmd.Flags().Int64Var(&admissionInput.DepartmentID, "department", 0, "department id")
	cmd.Flags().StringVar(&admissionInput.AdmissionDate, "date", "", "admission date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&admissionInput.DischargeDate, "discharge-date", "", "discharge date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&admissionInput.Reason, "reason", "", "reason for admission")
	cmd.Flags().StringVar(&admissionInput.Status, "status", "", "admission status")
}

func init() {
	addInputFlags(createCmd)
	addInputFlags(updateCmd)
	createCmd.MarkFlagRequired("patient")
	createCmd.MarkFlagRequired("department")
	createCmd.MarkFlagRequired("date")
}
