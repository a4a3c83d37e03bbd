package consultation

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

var consultationInput sdk.ConsultationInput

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List consultations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching consultations",
			func(ctx context.Context) ([]sdk.Consultation, error) {
				return client.ListConsultations(ctx)
			},
			func(consultations []sdk.Consultation) {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tADMISSION\tDATE\tTYPE")
				for _, c := range consultations {
					fmt.Fprintf(w, "%d\t%d\t%s\t%s\n",
						c.ID, c.AdmissionID, c.ConsultationDate, c.ConsultationType)
				}
				w.Flush()
			},
		)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one consultation",
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

		return view.Run(cmd.Context(), "Fetching consultation",
			func(ctx context.Context) (*sdk.Consultation, error) {
				return client.GetConsultation(ctx, id)
			},
			func(c *sdk.Consultation) {
				pterm.DefaultSection.Printfln("Consultation #%d", c.ID)
				pterm.DefaultTable.WithData([][]string{
					{"Admission", fmt.Sprintf("#%d", c.AdmissionID)},
					{"Date", c.ConsultationDate},
					{"Type", c.ConsultationType},
				}).Render()
			},
		)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a new consultation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		created, err := client.CreateConsultation(cmd.Context(), consultationInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Created consultation #%d", created.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a consultation",
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

		updated, err := client.UpdateConsultation(cmd.Context(), id, consultationInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Updated consultation #%d", updated.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a consultation",
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
		if err := client.DeleteConsultation(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printfln("Deleted consultation #%d", id)
		return nil
	},
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&consultationInput.AdmissionID, "admission", 0, "admission id")
	cmd.Flags().StringVar(&consultationInput.ConsultationDate, "date", "", "consultation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&consultationInput.ConsultationType, "type", "", "consultation type")
}

func init() {
	addInputFlags(createCmd)
	addInputFlags(updateCmd)
	createCmd.MarkFlagRequired("admission")
	createCmd.MarkFlagRequired("date")
}
