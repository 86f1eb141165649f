package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/db"
	"github.com/saadjs/lifetrack-cli/internal/service"
)

func TestBackupCreateListRestore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sqldb, path := newTestDB(t)
	want := populatedState(t)
	if err := service.NewStore(db.NewKVStore(sqldb), nil).Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	backupDir := filepath.Join(t.TempDir(), "backups")
	info, err := service.CreateBackup(ctx, sqldb, filepath.Join(backupDir, "lifetrack-1.db"))
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if len(info.Checksum) != 64 || info.StateError != "" {
		t.Fatalf("unexpected backup info %+v", info)
	}
	wantCounts := service.HistoryCounts{Weights: 1, Study: 1, Workouts: 1, Walks: 1, Cravings: 1}
	if info.Counts != wantCounts || info.LastUpdated != want.LastUpdated {
		t.Fatalf("expected backup to describe the saved state, got %+v", info)
	}
	if _, err := service.CreateBackup(ctx, sqldb, info.Path); err == nil {
		t.Fatalf("expected existing backup file to be refused")
	}

	items, err := service.ListBackups(ctx, backupDir)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(items) != 1 || items[0].Checksum != info.Checksum || items[0].Counts != wantCounts {
		t.Fatalf("unexpected backup list %+v", items)
	}

	if _, err := service.RestoreBackup(ctx, info.Path, path, false); err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected restore over an existing db to refuse, got %v", err)
	}
	target := filepath.Join(t.TempDir(), "restored", "lifetrack.db")
	restored, err := service.RestoreBackup(ctx, info.Path, target, false)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(restored, want) {
		t.Fatalf("restored state mismatch\n got: %+v\nwant: %+v", restored, want)
	}

	reopened, err := db.Open(target)
	if err != nil {
		t.Fatalf("open restored db: %v", err)
	}
	defer reopened.Close()
	if got := service.NewStore(db.NewKVStore(reopened), nil).Load(ctx); !reflect.DeepEqual(got, want) {
		t.Fatalf("restored db does not load the saved state")
	}
}

func TestRestoreBackupRefusesCorruptState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sqldb, backup := newTestDB(t)
	if err := db.NewKVStore(sqldb).Set(ctx, service.StorageKey, []byte(`{"currentWeight":`)); err != nil {
		t.Fatalf("seed corrupt state: %v", err)
	}
	if err := sqldb.Close(); err != nil {
		t.Fatalf("close backup db: %v", err)
	}

	target := filepath.Join(t.TempDir(), "lifetrack.db")
	_, err := service.RestoreBackup(ctx, backup, target, false)
	var perr *service.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError for a corrupt backup, got %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected no db written for a refused restore, stat err = %v", err)
	}

	items, err := service.ListBackups(ctx, filepath.Dir(backup))
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(items) != 1 || items[0].StateError == "" {
		t.Fatalf("expected corrupt backup listed with a state error, got %+v", items)
	}
}

func TestRestoreBackupChecksumMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sqldb, _ := newTestDB(t)
	out := filepath.Join(t.TempDir(), "lifetrack.db")
	if _, err := service.CreateBackup(ctx, sqldb, out); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := os.WriteFile(out+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatalf("write checksum: %v", err)
	}
	_, err := service.RestoreBackup(ctx, out, filepath.Join(t.TempDir(), "out.db"), true)
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

func TestInspectBackupWithoutStateHoldsDefaults(t *testing.T) {
	t.Parallel()
	_, path := newTestDB(t)
	got, err := service.InspectBackup(context.Background(), path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if got.CurrentWeight != 114 || len(got.WeightHistory) != 0 {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
