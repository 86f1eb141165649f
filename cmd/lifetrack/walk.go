package lifetrack

import (
	"context"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Log and list walks",
}

var (
	walkSteps    int
	walkDistance float64
	walkDuration int
	walkLocation string
	walkDate     string
	walkNotes    string
	walkLimit    int
)

var walkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a walk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if walkSteps < 0 || walkDistance < 0 || walkDuration < 0 {
			return fmt.Errorf("steps, distance, and duration must be >= 0")
		}
		if walkSteps == 0 && walkDistance == 0 {
			return fmt.Errorf("set --steps or --distance")
		}
		date, err := parseDateArg("date", walkDate)
		if err != nil {
			return err
		}
		e := model.WalkingEntry{
			Date:     date,
			Steps:    walkSteps,
			Distance: walkDistance,
			Duration: walkDuration,
			Location: walkLocation,
			Notes:    walkNotes,
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if !t.AddWalkingEntry(ctx, e) {
				return fmt.Errorf("walk rejected")
			}
			s := t.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged walk. Today: %d/%d steps, %.1f/%.1f km (streak %d)\n",
				s.DailySteps, s.TargetSteps, s.DailyDistance, s.TargetDistance, s.WalkingStreak)
			return nil
		})
	},
}

var walkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List walks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tSTEPS\tKM\tMINUTES\tLOCATION\tNOTES")
			for _, e := range limitTail(t.State().WalkingHistory, walkLimit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.2f\t%d\t%s\t%s\n", e.Date, e.Steps, e.Distance, e.Duration, e.Location, e.Notes)
			}
			return nil
		})
	},
}

var walkMonthCmd = &cobra.Command{
	Use:   "month <name>",
	Short: "Show walking totals against a monthly goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			p, err := service.MonthlyProgress(t.State(), args[0])
			if err != nil {
				return err
			}
			printMonth(cmd, p)
			return nil
		})
	},
}

func printMonth(cmd *cobra.Command, p service.MonthProgress) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", p.Month, p.Year)
	fmt.Fprintf(cmd.OutOrStdout(), "Steps: %d/%d (%.1f%%)%s\n", p.Steps, p.Goal.StepsTarget, p.StepsPct, achievedMark(p.StepsAchieved))
	fmt.Fprintf(cmd.OutOrStdout(), "Distance: %.1f/%.1f km (%.1f%%)%s\n", p.Distance, p.Goal.DistanceTarget, p.DistancePct, achievedMark(p.DistanceAchieved))
	fmt.Fprintf(cmd.OutOrStdout(), "Weight target: %.1f kg%s\n", p.Goal.WeightTarget, achievedMark(p.WeightAchieved))
	fmt.Fprintf(cmd.OutOrStdout(), "Modules target: %d%s\n", p.Goal.ModulesTarget, achievedMark(p.ModulesAchieved))
}

func achievedMark(ok bool) string {
	if ok {
		return " [achieved]"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.AddCommand(walkAddCmd, walkListCmd, walkMonthCmd)

	walkAddCmd.Flags().IntVar(&walkSteps, "steps", 0, "Steps walked")
	walkAddCmd.Flags().Float64Var(&walkDistance, "distance", 0, "Distance in km")
	walkAddCmd.Flags().IntVar(&walkDuration, "duration", 0, "Duration in minutes")
	walkAddCmd.Flags().StringVar(&walkLocation, "location", "", "Where you walked")
	walkAddCmd.Flags().StringVar(&walkDate, "date", "", "Date YYYY-MM-DD (default today)")
	walkAddCmd.Flags().StringVar(&walkNotes, "notes", "", "Optional notes")
	walkListCmd.Flags().IntVar(&walkLimit, "limit", 0, "Show only the most recent N walks")
}
