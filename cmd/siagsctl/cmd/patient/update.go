package patient

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/pkg/sdk"
)

var updateInput sdk.PatientInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a patient record",
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

		updated, err := client.UpdatePatient(cmd.Context(), id, updateInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Updated patient #%d", updated.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.RecordNumber, "record", "", "medical record number")
	updateCmd.Flags().StringVar(&updateInput.FirstName, "first-name", "", "first name")
	updateCmd.Flags().StringVar(&updateInput.LastName, "last-name", "", "last name")
	updateCmd.Flags().StringVar(&updateInput.Gender, "gender", "", "MASCULIN, FEMININ or AUTRE")
	updateCmd.Flags().StringVar(&updateInput.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateInput.PhoneNumber, "phone", "", "phone number")
	updateCmd.Flags().StringVar(&updateInput.Address, "address", "", "address")
}
