package lifetrack

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot, list, and restore the tracker database",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a snapshot of the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(backupDirFor(path), fmt.Sprintf("lifetrack-%s.db", time.Now().Format("20060102-150405")))
		}
		return withDB(func(sqldb *sql.DB) error {
			info, err := service.CreateBackup(commandContext(cmd), sqldb, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Entries: %s\n", formatCounts(info.Counts))
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots with their last update and entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		items, err := service.ListBackups(commandContext(cmd), backupDirFor(path))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tCREATED\tLAST_UPDATED\tENTRIES\tCHECKSUM")
		for _, it := range items {
			state := it.LastUpdated
			entries := formatCounts(it.Counts)
			if it.StateError != "" {
				state, entries = "unreadable", it.StateError
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", it.Path, it.CreatedAt.Format(time.RFC3339), state, entries, it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the database with a verified snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		state, err := service.RestoreBackup(commandContext(cmd), restoreFile, path, restoreForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s (last updated %s, %s)\n", restoreFile, state.LastUpdated, formatCounts(service.CountHistories(state)))
		return nil
	},
}

func formatCounts(c service.HistoryCounts) string {
	return fmt.Sprintf("weight %d, study %d, workout %d, walk %d, craving %d", c.Weights, c.Study, c.Workouts, c.Walks, c.Cravings)
}

func backupDirFor(dbPath string) string {
	if backupDir != "" {
		return backupDir
	}
	return filepath.Join(filepath.Dir(dbPath), "backups")
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCmd.PersistentFlags().StringVar(&backupDir, "dir", "", "Snapshot directory (default: backups/ next to the database)")
	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Snapshot file path (default lifetrack-<timestamp>.db in --dir)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Snapshot .db file to restore")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite the current database")
}
