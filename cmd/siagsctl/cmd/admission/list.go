package admission

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/view"
	"github.com/siags/siagsctl/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List admissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching admissions",
			func(ctx context.Context) ([]sdk.Admission, error) {
				return client.ListAdmissions(ctx)
			},
			func(admissions []sdk.Admission) {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tPATIENT\tDEPARTMENT\tADMITTED\tDISCHARGED\tSTATUS")
				for _, a := range admissions {
					fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n",
						a.ID, a.PatientID, a.DepartmentID, a.AdmissionDate, a.DischargeDate, a.Status)
				}
				w.Flush()
			},
		)
	},
}
