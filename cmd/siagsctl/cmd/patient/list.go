package patient

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

var listOpts sdk.ListPatientsOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List patient records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching patients",
			func(ctx context.Context) (*sdk.PatientPage, error) {
				return client.ListPatients(ctx, listOpts)
			},
			func(page *sdk.PatientPage) {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tRECORD\tLAST NAME\tFIRST NAME\tGENDER\tBORN")
				for _, p := range page.Content {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
						p.ID, p.RecordNumber, p.LastName, p.FirstName, p.Gender, p.BirthDate)
				}
				w.Flush()
				fmt.Printf("\nPage %d of %d (%d patients)\n", listOpts.Page+1, page.TotalPages, page.TotalElements)
			},
		)
	},
}

func init() {
	listCmd.Flags().IntVar(&listOpts.Page, "page", 0, "page number, starting at 0")
	listCmd.Flags().IntVar(&listOpts.Size, "size", 10, "page size")
	listCmd.Flags().StringVar(&listOpts.Search, "search", "", "filter by name or record number")
}
