package lifetrack

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/app"
	"github.com/saadjs/lifetrack-cli/internal/db"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withTracker loads the stored state into a Tracker for the duration of run.
func withTracker(cmd *cobra.Command, run func(context.Context, *service.Tracker) error) error {
	return withDB(func(sqldb *sql.DB) error {
		ctx := commandContext(cmd)
		logger := newLogger(cmd)
		store := service.NewStore(db.NewKVStore(sqldb), logger)
		return run(ctx, service.NewTracker(ctx, store, service.NewMutator(), logger))
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newLogger(cmd *cobra.Command) *log.Logger {
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "lifetrack: ", 0)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// parseDateArg validates an optional YYYY-MM-DD flag. Empty means today.
func parseDateArg(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if _, err := time.ParseInLocation("2006-01-02", value, time.Local); err != nil {
		return "", fmt.Errorf("invalid --%s %q (expected YYYY-MM-DD)", name, value)
	}
	return value, nil
}

func parseClockArg(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", fmt.Errorf("invalid --%s %q (expected HH:MM)", name, value)
	}
	return t.Format("15:04"), nil
}

// splitList splits a comma separated flag, dropping blanks.
func splitList(value string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseModuleList(value string) ([]int, error) {
	out := make([]int, 0)
	for _, part := range splitList(value) {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid module number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func requirePositive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// limitTail returns the last n items, or all of them when n <= 0.
func limitTail[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}
