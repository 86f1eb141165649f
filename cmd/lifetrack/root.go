package lifetrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	quiet  bool
)

var rootCmd = &cobra.Command{
	Use:           "lifetrack",
	Short:         "lifetrack tracks weight, study, workouts, walking, and cravings from your terminal",
	Long:          "lifetrack is a local-first tracker for a six month life optimization plan: weight loss, study modules, gym sessions, daily walking, and craving control.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := loadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress storage warnings")
}
