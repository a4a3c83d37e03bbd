package patient

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/view"
	"github.com/siags/siagsctl/pkg/sdk"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one patient record",
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

		return view.Run(cmd.Context(), "Fetching patient",
			func(ctx context.Context) (*sdk.Patient, error) {
				return client.GetPatient(ctx, id)
			},
			renderPatient,
		)
	},
}

func renderPatient(p *sdk.Patient) {
	pterm.DefaultSection.Printfln("Patient #%d", p.ID)
	pterm.DefaultTable.WithData([][]string{
		{"Record", p.RecordNumber},
		{"Name", p.FirstName + " " + p.LastName},
		{"Gender", p.Gender},
		{"Born", p.BirthDate},
		{"Phone", p.PhoneNumber},
		{"Address", p.Address},
	}).Render()
}
