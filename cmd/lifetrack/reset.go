package lifetrack

import (
	"context"
	"errors"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start the plan over",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if err := t.Reset(ctx, resetYes); err != nil {
				if errors.Is(err, service.ErrResetNotConfirmed) {
					return fmt.Errorf("%w; rerun with --yes to delete all data", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data reset to plan defaults")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deleting all data")
}
