package report

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/view"
	"github.com/siags/siagsctl/pkg/sdk"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, reportPermissions); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching report summary",
			func(ctx context.Context) (*sdk.ReportSummary, error) {
				return client.ReportSummary(ctx)
			},
			func(s *sdk.ReportSummary) {
				pterm.DefaultSection.Println("Totals")
				pterm.Printfln("Patients:   %d", s.TotalPatients)
				pterm.Printfln("Admissions: %d", s.TotalAdmissions)

				pterm.DefaultSection.Println("Patients by gender")
				renderCounts(s.PatientsByGender)

				pterm.DefaultSection.Println("Admissions by department")
				renderCounts(s.AdmissionsByDepartment)
			},
		)
	},
}

func renderCounts(counts map[string]int) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for _, label := range labels {
		fmt.Fprintf(w, "%s\t%d\n", label, counts[label])
	}
	w.Flush()
}
