package lifetrack

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadjs/lifetrack-cli/internal/db"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			kv := db.NewKVStore(sqldb)
			report, err := service.RunDoctor(commandContext(cmd), kv, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored state: %s\n", stateSummary(report))
			fmt.Fprintf(cmd.OutOrStdout(), "Unknown keys: %d\n", len(report.UnknownKeys))
			if len(report.UnknownKeys) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.Join(report.UnknownKeys, ", "))
			}
			if report.ClearedState {
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared unreadable state; next run starts from defaults")
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(commandContext(cmd), kv, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func stateSummary(r service.DoctorReport) string {
	switch {
	case !r.StatePresent:
		return "none (defaults)"
	case r.StateValid:
		return "ok"
	default:
		return "invalid: " + r.StateError
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Clear stored state that cannot be read")
}
