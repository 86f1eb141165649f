package lifetrack

import (
	"context"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and list weigh-ins",
}

var (
	weightValue float64
	weightUnit  string
	weightDate  string
	weightNotes string
	weightLimit int
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a weigh-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePositive("weight", weightValue); err != nil {
			return err
		}
		kg, err := service.ToKilograms(weightValue, weightUnit)
		if err != nil {
			return err
		}
		date, err := parseDateArg("date", weightDate)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if !t.AddWeight(ctx, model.WeightEntry{Date: date, Weight: kg, Notes: weightNotes}) {
				return fmt.Errorf("weight entry rejected")
			}
			s := t.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg (lost %.1f kg, %.0f%% of goal)\n", s.CurrentWeight, service.WeightLost(s), service.WeightProgress(s))
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weigh-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT_KG\tNOTES")
			for _, e := range limitTail(t.State().WeightHistory, weightLimit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%s\n", e.Date, e.Weight, e.Notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().Float64Var(&weightValue, "weight", 0, "Body weight")
	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "kg", "Weight unit: kg|lb|st")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
	weightAddCmd.Flags().StringVar(&weightNotes, "notes", "", "Optional notes")
	_ = weightAddCmd.MarkFlagRequired("weight")
	weightListCmd.Flags().IntVar(&weightLimit, "limit", 0, "Show only the most recent N entries")
}
