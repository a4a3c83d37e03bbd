package patient

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a patient record",
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

		if !deleteYes && !cfg.NonInteractive {
			ok, err := pterm.DefaultInteractiveConfirm.Show("Delete patient #" + args[0] + "?")
			if err != nil {
				return err
			}
			if !ok {
				pterm.Info.Println("Aborted.")
				return nil
			}
		}

		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}
		if err := client.DeletePatient(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printfln("Deleted patient #%d", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
