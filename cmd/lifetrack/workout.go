package lifetrack

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and list gym sessions",
}

var (
	workoutType      string
	workoutDuration  float64
	workoutExercises string
	workoutDate      string
	workoutNotes     string
	workoutLimit     int
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		wt, err := model.ParseWorkoutType(workoutType)
		if err != nil {
			return err
		}
		if err := requirePositive("duration", workoutDuration); err != nil {
			return err
		}
		date, err := parseDateArg("date", workoutDate)
		if err != nil {
			return err
		}
		w := model.WorkoutSession{
			Date:      date,
			Type:      wt,
			Duration:  workoutDuration,
			Exercises: splitList(workoutExercises),
			Notes:     workoutNotes,
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if !t.AddWorkoutSession(ctx, w) {
				return fmt.Errorf("workout rejected")
			}
			s := t.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s workout, %.1f h (%d/%d this week, gym streak %d)\n",
				wt.Label(), w.Duration, s.WeeklyWorkouts, s.TargetWorkouts, s.GymStreak)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tTYPE\tHOURS\tEXERCISES\tNOTES")
			for _, w := range limitTail(t.State().WorkoutHistory, workoutLimit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%s\t%s\n", w.Date, w.Type, w.Duration, strings.Join(w.Exercises, ","), w.Notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd)

	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type: upper|lower|full|hiit|cardio|recovery")
	workoutAddCmd.Flags().Float64Var(&workoutDuration, "duration", 0, "Duration in hours")
	workoutAddCmd.Flags().StringVar(&workoutExercises, "exercises", "", "Comma separated exercises")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "Optional notes")
	_ = workoutAddCmd.MarkFlagRequired("type")
	_ = workoutAddCmd.MarkFlagRequired("duration")
	workoutListCmd.Flags().IntVar(&workoutLimit, "limit", 0, "Show only the most recent N workouts")
}
