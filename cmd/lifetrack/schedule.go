package lifetrack

import (
	"context"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show and check off the weekly schedule",
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			printSchedule(cmd, t.State())
			return nil
		})
	},
}

var scheduleCompleteCmd = &cobra.Command{
	Use:   "complete <day>",
	Short: "Toggle a day's completed flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if err := t.ToggleDayCompleted(ctx, args[0]); err != nil {
				return err
			}
			printSchedule(cmd, t.State())
			return nil
		})
	},
}

var scheduleToggleCmd = &cobra.Command{
	Use:   "toggle <day> <study|gym>",
	Short: "Toggle a day's study or gym flag",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, err := service.ParseActivity(args[1])
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if err := t.ToggleActivity(ctx, args[0], activity); err != nil {
				return err
			}
			printSchedule(cmd, t.State())
			return nil
		})
	},
}

func printSchedule(cmd *cobra.Command, s model.UserData) {
	fmt.Fprintln(cmd.OutOrStdout(), "DAY\tSTUDY_H\tGYM_H\tSTUDY\tGYM\tDONE")
	for _, day := range model.ScheduleDays {
		d, ok := s.WeeklySchedule[day]
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%.1f\t%s\t%s\t%s\n", day, d.StudyHours, d.GymHours, checkMark(d.Study), checkMark(d.Gym), checkMark(d.Completed))
	}
}

func checkMark(ok bool) string {
	if ok {
		return "x"
	}
	return "-"
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleShowCmd, scheduleCompleteCmd, scheduleToggleCmd)
}
