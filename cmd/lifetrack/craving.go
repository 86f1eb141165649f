package lifetrack

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var cravingCmd = &cobra.Command{
	Use:   "craving",
	Short: "Log cravings and review resistance",
}

var (
	cravingFood       string
	cravingIntensity  int
	cravingTrigger    string
	cravingMood       string
	cravingAction     string
	cravingSubstitute string
	cravingLocation   string
	cravingDate       string
	cravingTime       string
	cravingNotes      string
	cravingLimit      int
)

var cravingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a craving",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(cravingFood) == "" {
			return fmt.Errorf("--food is required")
		}
		if cravingIntensity < 1 || cravingIntensity > 5 {
			return fmt.Errorf("intensity must be between 1 and 5")
		}
		trigger, err := model.ParseCravingTrigger(cravingTrigger)
		if err != nil {
			return err
		}
		mood, err := model.ParseMood(cravingMood)
		if err != nil {
			return err
		}
		action, err := model.ParseCravingAction(cravingAction)
		if err != nil {
			return err
		}
		if action == model.ActionSubstituted && strings.TrimSpace(cravingSubstitute) == "" {
			return fmt.Errorf("--substitute is required when --action=substituted")
		}
		date, err := parseDateArg("date", cravingDate)
		if err != nil {
			return err
		}
		clock, err := parseClockArg("time", cravingTime)
		if err != nil {
			return err
		}
		c := model.CravingEntry{
			Date:       date,
			Time:       clock,
			Food:       cravingFood,
			Intensity:  cravingIntensity,
			Trigger:    trigger,
			Location:   cravingLocation,
			Mood:       mood,
			Action:     action,
			Substitute: cravingSubstitute,
			Notes:      cravingNotes,
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if !t.AddCravingEntry(ctx, c) {
				return fmt.Errorf("craving rejected")
			}
			s := t.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged craving for %s (%s). Streak %d, resisted %d of %d\n",
				c.Food, action, s.CravingStreak, s.TotalCravingsResisted, len(s.CravingHistory))
			return nil
		})
	},
}

var cravingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cravings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tTIME\tFOOD\tINTENSITY\tTRIGGER\tMOOD\tACTION\tSUBSTITUTE\tLOCATION")
			for _, c := range limitTail(t.State().CravingHistory, cravingLimit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
					c.Date, c.Time, c.Food, c.Intensity, c.Trigger, c.Mood, c.Action, c.Substitute, c.Location)
			}
			return nil
		})
	},
}

var cravingStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show craving resistance, triggers, and intensity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			s := t.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Resistance rate: %.1f%% (%d of %d)\n", service.CravingResistanceRate(s), s.TotalCravingsResisted, len(s.CravingHistory))
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d\n", s.CravingStreak)
			fmt.Fprintln(cmd.OutOrStdout(), "TRIGGER\tCOUNT")
			for _, ts := range service.CravingTriggerStats(s) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", ts.Trigger, ts.Count)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "INTENSITY\tCOUNT")
			for _, is := range service.CravingIntensityStats(s) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", is.Level, is.Count)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cravingCmd)
	cravingCmd.AddCommand(cravingAddCmd, cravingListCmd, cravingStatsCmd)

	cravingAddCmd.Flags().StringVar(&cravingFood, "food", "", "What you craved")
	cravingAddCmd.Flags().IntVar(&cravingIntensity, "intensity", 3, "Intensity 1 (mild) to 5 (intense)")
	cravingAddCmd.Flags().StringVar(&cravingTrigger, "trigger", "other", "Trigger: stress|boredom|emotion|hunger|habit|social|other")
	cravingAddCmd.Flags().StringVar(&cravingMood, "mood", "neutral", "Mood: happy|sad|stressed|anxious|bored|tired|neutral")
	cravingAddCmd.Flags().StringVar(&cravingAction, "action", "resisted", "Action: resisted|gave_in|substituted|delayed")
	cravingAddCmd.Flags().StringVar(&cravingSubstitute, "substitute", "", "What you had instead (with --action=substituted)")
	cravingAddCmd.Flags().StringVar(&cravingLocation, "location", "", "Where it happened")
	cravingAddCmd.Flags().StringVar(&cravingDate, "date", "", "Date YYYY-MM-DD (default today)")
	cravingAddCmd.Flags().StringVar(&cravingTime, "time", "", "Time HH:MM (default now)")
	cravingAddCmd.Flags().StringVar(&cravingNotes, "notes", "", "Optional notes")
	cravingListCmd.Flags().IntVar(&cravingLimit, "limit", 0, "Show only the most recent N cravings")
}
