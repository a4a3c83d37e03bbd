package audit

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
	Short: "List audit log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.RequireAccess([]string{"ROLE_ADMIN"}, nil); err != nil {
			return err
		}
		client, err := cfg.Provider.Client()
		if err != nil {
			return err
		}

		return view.Run(cmd.Context(), "Fetching audit log",
			func(ctx context.Context) ([]sdk.AuditEvent, error) {
				return client.ListAuditEvents(ctx)
			},
			func(events []sdk.AuditEvent) {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "DATE\tUSER\tACTION\tDETAILS")
				for _, e := range events {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						e.EventDate, e.Username, e.Action, e.Details)
				}
				w.Flush()
			},
		)
	},
}
