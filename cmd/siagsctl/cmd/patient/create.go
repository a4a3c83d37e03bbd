package patient

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
	"github.com/siags/siagsctl/pkg/sdk"
)

var createInput sdk.PatientInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess(nil, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		created, err := client.CreatePatient(cmd.Context(), createInput)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Created patient #%d (%s %s)", created.ID, created.FirstName, created.LastName)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.RecordNumber, "record", "", "medical record number")
	createCmd.Flags().StringVar(&createInput.FirstName, "first-name", "", "first name")
	createCmd.Flags().StringVar(&createInput.LastName, "last-name", "", "last name")
	createCmd.Flags().StringVar(&createInput.Gender, "gender", "", "MASCULIN, FEMININ or AUTRE")
	createCmd.Flags().StringVar(&createInput.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&createInput.PhoneNumber, "phone", "", "phone number")
	createCmd.Flags().StringVar(&createInput.Address, "address", "", "address")
	createCmd.MarkFlagRequired("first-name")
	createCmd.MarkFlagRequired("last-name")
	createCmd.MarkFlagRequired("gender")
	createCmd.MarkFlagRequired("birth-date")
}
