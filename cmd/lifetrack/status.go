package lifetrack

import (
	"context"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's progress across every area",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			s := t.State()
			phase := service.Phases()[service.CurrentPhase(s.ModulesCompleted)-1]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", s.Name)
			fmt.Fprintf(out, "Weight: %.1f kg (start %.1f, target %.1f, lost %.1f, %.0f%%)\n",
				s.CurrentWeight, s.StartWeight, s.TargetWeight, service.WeightLost(s), service.WeightProgress(s))
			fmt.Fprintf(out, "Study: %d/%d modules (%.0f%%), %.1f h, streak %d\n",
				s.ModulesCompleted, s.TotalModules, service.StudyProgress(s), s.TotalStudyHours, s.StudyStreak)
			fmt.Fprintf(out, "Phase: %d %s (%s)\n", phase.Number, phase.Name, phase.Focus)
			fmt.Fprintf(out, "Gym: %d/%d this week (%.0f%%), %.1f h, streak %d\n",
				s.WeeklyWorkouts, s.TargetWorkouts, service.GymProgress(s), s.TotalWorkoutHours, s.GymStreak)
			fmt.Fprintf(out, "Walking: %d/%d steps (%.0f%%), %.1f/%.1f km, streak %d\n",
				s.DailySteps, s.TargetSteps, service.WalkingProgress(s), s.DailyDistance, s.TargetDistance, s.WalkingStreak)
			fmt.Fprintf(out, "Cravings: streak %d, resisted %d of %d (%.0f%%)\n",
				s.CravingStreak, s.TotalCravingsResisted, len(s.CravingHistory), service.CravingResistanceRate(s))
			fmt.Fprintf(out, "Nutrition: %d/%d kcal, water %.1f L, sleep %.1f h, fasting %s-%s\n",
				s.CaloriesConsumed, s.TargetCalories, s.WaterIntake, s.SleepHours, s.FastingWindow.Start, s.FastingWindow.End)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
