package lifetrack

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Log and list study sessions",
}

var (
	studyHours   float64
	studyModules string
	studyTopics  string
	studyDate    string
	studyNotes   string
	studyLimit   int
)

var studyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePositive("hours", studyHours); err != nil {
			return err
		}
		modules, err := parseModuleList(studyModules)
		if err != nil {
			return err
		}
		date, err := parseDateArg("date", studyDate)
		if err != nil {
			return err
		}
		sess := model.StudySession{
			Date:    date,
			Hours:   studyHours,
			Modules: modules,
			Topics:  splitList(studyTopics),
			Notes:   studyNotes,
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if !t.AddStudySession(ctx, sess) {
				return fmt.Errorf("study session rejected")
			}
			s := t.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f h of study (modules %d/%d, phase %d, streak %d)\n",
				sess.Hours, s.ModulesCompleted, s.TotalModules, service.CurrentPhase(s.ModulesCompleted), s.StudyStreak)
			return nil
		})
	},
}

var studyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tHOURS\tMODULES\tTOPICS\tNOTES")
			for _, sess := range limitTail(t.State().StudyHistory, studyLimit) {
				mods := make([]string, 0, len(sess.Modules))
				for _, m := range sess.Modules {
					mods = append(mods, strconv.Itoa(m))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%s\t%s\t%s\n", sess.Date, sess.Hours, strings.Join(mods, ","), strings.Join(sess.Topics, ","), sess.Notes)
			}
			return nil
		})
	},
}

var studyPhasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Show the curriculum phases",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			current := service.CurrentPhase(t.State().ModulesCompleted)
			fmt.Fprintln(cmd.OutOrStdout(), "PHASE\tNAME\tMODULES\tWEEKS\tFOCUS")
			for _, p := range service.Phases() {
				marker := ""
				if p.Number == current {
					marker = " *"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d%s\t%s\t%d-%d\t%s\t%s\n", p.Number, marker, p.Name, p.FirstMod, p.LastMod, p.Weeks, p.Focus)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
	studyCmd.AddCommand(studyAddCmd, studyListCmd, studyPhasesCmd)

	studyAddCmd.Flags().Float64Var(&studyHours, "hours", 0, "Hours studied")
	studyAddCmd.Flags().StringVar(&studyModules, "modules", "", "Comma separated module numbers covered")
	studyAddCmd.Flags().StringVar(&studyTopics, "topics", "", "Comma separated topics")
	studyAddCmd.Flags().StringVar(&studyDate, "date", "", "Date YYYY-MM-DD (default today)")
	studyAddCmd.Flags().StringVar(&studyNotes, "notes", "", "Optional notes")
	_ = studyAddCmd.MarkFlagRequired("hours")
	studyListCmd.Flags().IntVar(&studyLimit, "limit", 0, "Show only the most recent N sessions")
}
