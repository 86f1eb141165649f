package lifetrack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut string
	importIn  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := strings.TrimSpace(exportOut)
		if out == "" {
			out = service.ExportFileName(time.Now())
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			b, err := t.Export()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", out)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace all data with a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		b, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if err := t.Import(ctx, b); err != nil {
				var perr *service.ParseError
				if errors.As(err, &perr) {
					return fmt.Errorf("import %s: %w", importIn, err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported data from %s\n", importIn)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default life_optimization_data_<date>.json)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input JSON file")
}
