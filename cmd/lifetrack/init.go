package lifetrack

import (
	"context"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local lifetrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized lifetrack database at %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Plan starts %s for %s\n", t.State().StartDate, t.State().Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
