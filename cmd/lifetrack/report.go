package lifetrack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the full progress report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			r := service.BuildReport(t.State(), time.Now())
			if reportJSON {
				b, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal report json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printReport(cmd, r)
			return nil
		})
	},
}

func printReport(cmd *cobra.Command, r service.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Weight: lost %.1f kg (%.1f%%)\n", r.WeightLost, r.WeightProgress)
	fmt.Fprintf(out, "Study: %.1f%% of modules, %.1f%% of planned hours\n", r.StudyProgress, r.StudyHoursProgress)
	fmt.Fprintf(out, "Phase: %d %s (modules %d-%d)\n", r.Phase.Number, r.Phase.Name, r.Phase.FirstMod, r.Phase.LastMod)
	fmt.Fprintf(out, "Gym: %.1f%% of weekly target, %.1f%% of planned hours\n", r.GymProgress, r.WorkoutHoursProgress)
	fmt.Fprintf(out, "Walking: %.1f%% of steps, %.1f%% of distance\n", r.WalkingProgress, r.DistanceProgress)
	fmt.Fprintf(out, "Craving resistance: %.1f%%\n", r.CravingResistanceRate)

	if r.CurrentMonth != nil {
		fmt.Fprintln(out)
		fmt.Fprint(out, "This month: ")
		printMonth(cmd, *r.CurrentMonth)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "MONTH\tSTEPS\tSTEPS%\tKM\tKM%")
	for _, m := range r.Months {
		fmt.Fprintf(out, "%s %d\t%d\t%.1f\t%.1f\t%.1f\n", m.Month, m.Year, m.Steps, m.StepsPct, m.Distance, m.DistancePct)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "MILESTONE\tACHIEVED\tDESCRIPTION")
	for _, m := range r.Milestones {
		fmt.Fprintf(out, "%s\t%s\t%s\n", m.Title, checkMark(m.Achieved), m.Description)
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(out, "- %s\n", rec)
		}
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output JSON")
}
