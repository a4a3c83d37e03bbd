package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/siags/siagsctl/cmd/siagsctl/cmd/admission"
	"github.com/siags/siagsctl/cmd/siagsctl/cmd/audit"
	authcmd "github.com/siags/siagsctl/cmd/siagsctl/cmd/auth"
	"github.com/siags/siagsctl/cmd/siagsctl/cmd/consultation"
	"github.com/siags/siagsctl/cmd/siagsctl/cmd/department"
	"github.com/siags/siagsctl/cmd/siagsctl/cmd/patient"
	"github.com/siags/siagsctl/cmd/siagsctl/cmd/report"
	"github.com/siags/siagsctl/cmd/siagsctl/cmd/user"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/client"
	"github.com/siags/siagsctl/cmd/siagsctl/internal/config"
)

const defaultServerURL = "http://localhost:8080"

var (
	serverURL      string
	bearerToken    string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "siagsctl",
	Short: "Command-line client for the SIAGS hospital administration API",
	Long: `siagsctl manages patients, admissions, departments, consultations,
users, reports and audit logs on a SIAGS server.

Authenticate once with 'siagsctl auth login'; the session is stored under
~/.siags and attached to every request until it expires or you log out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("SIAGS_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		server := serverURL
		if !cmd.Flags().Changed("server") {
			if env := os.Getenv("SIAGS_SERVER"); env != "" {
				server = env
			} else if fileCfg, err := config.LoadFile(); err == nil && fileCfg != nil && fileCfg.Server != "" {
				server = fileCfg.Server
			}
		}

		provider := client.NewProvider(server)
		if bearerToken != "" {
			provider.SetBearerToken(bearerToken)
		}
		provider.SetSessionExpiredHandler(func() {
			pterm.Warning.Println("Session expired; run `siagsctl auth login` to sign in again.")
		})

		cfg := &config.GlobalConfig{
			ServerURL:      server,
			NonInteractive: nonInteractive,
			Provider:       provider,
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL, "SIAGS API server URL (also via SIAGS_SERVER)")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "ephemeral bearer token; bypasses the stored session")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "disable interactive prompts (also via SIAGS_NON_INTERACTIVE=1)")

	rootCmd.AddCommand(
		authcmd.AuthCmd,
		patient.PatientCmd,
		admission.AdmissionCmd,
		department.DepartmentCmd,
		consultation.ConsultationCmd,
		user.UserCmd,
		report.ReportCmd,
		audit.AuditCmd,
	)
}
