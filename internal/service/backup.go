package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/db"
	"github.com/saadjs/lifetrack-cli/internal/model"
)

// HistoryCounts is the number of entries per history in a snapshot.
type HistoryCounts struct {
	Weights  int `json:"weights"`
	Study    int `json:"study"`
	Workouts int `json:"workouts"`
	Walks    int `json:"walks"`
	Cravings int `json:"cravings"`
}

// CountHistories reports the entry count of each history in s.
func CountHistories(s model.UserData) HistoryCounts {
	return HistoryCounts{
		Weights:  len(s.WeightHistory),
		Study:    len(s.StudyHistory),
		Workouts: len(s.WorkoutHistory),
		Walks:    len(s.WalkingHistory),
		Cravings: len(s.CravingHistory),
	}
}

// BackupInfo describes one backup file and the tracker state inside it.
// StateError is set when the file's state cannot be read.
type BackupInfo struct {
	Path        string        `json:"path"`
	Checksum    string        `json:"checksum"`
	CreatedAt   time.Time     `json:"created_at"`
	SizeBytes   int64         `json:"size_bytes"`
	LastUpdated string        `json:"last_updated,omitempty"`
	Counts      HistoryCounts `json:"counts"`
	StateError  string        `json:"state_error,omitempty"`
}

// CreateBackup writes a consistent copy of the open database to outPath with
// VACUUM INTO, then records a .sha256 sidecar. outPath must not exist.
func CreateBackup(ctx context.Context, sqldb *sql.DB, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if _, err := os.Stat(outPath); err == nil {
		return BackupInfo{}, fmt.Errorf("backup %s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if _, err := sqldb.ExecContext(ctx, `VACUUM INTO ?`, outPath); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return describeBackup(ctx, outPath, checksum)
}

// InspectBackup reads the tracker state stored in the backup at path without
// modifying the file. A backup without a stored state holds the defaults; a
// stored state that does not decode yields a *ParseError.
func InspectBackup(ctx context.Context, path string) (model.UserData, error) {
	if _, err := os.Stat(path); err != nil {
		return model.UserData{}, fmt.Errorf("stat backup: %w", err)
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return model.UserData{}, err
	}
	defer sqldb.Close()

	raw, ok, err := db.NewKVStore(sqldb).Get(ctx, StorageKey)
	if err != nil {
		return model.UserData{}, fmt.Errorf("read backup state: %w", err)
	}
	if !ok {
		return DefaultUserData(time.Now()), nil
	}
	state, err := MergeOverDefaults(raw, time.Now())
	if err != nil {
		return model.UserData{}, &ParseError{Err: err}
	}
	return state, nil
}

// RestoreBackup checks the backup's checksum sidecar, when present, and its
// stored state before copying it over dbPath. It returns the restored state.
func RestoreBackup(ctx context.Context, backupPath, dbPath string, force bool) (model.UserData, error) {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return model.UserData{}, fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return model.UserData{}, fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return model.UserData{}, err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return model.UserData{}, fmt.Errorf("backup checksum mismatch")
		}
	}
	state, err := InspectBackup(ctx, backupPath)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return model.UserData{}, fmt.Errorf("refusing to restore %s: %w", backupPath, err)
		}
		return model.UserData{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return model.UserData{}, fmt.Errorf("create db directory: %w", err)
	}
	if err := copyFile(backupPath, dbPath); err != nil {
		return model.UserData{}, err
	}
	return state, nil
}

// ListBackups describes the .db files in dir, newest first. Backups whose
// state cannot be read are listed with StateError set.
func ListBackups(ctx context.Context, dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		info, err := describeBackup(ctx, full, checksum)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func describeBackup(ctx context.Context, path, checksum string) (BackupInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup file: %w", err)
	}
	info := BackupInfo{Path: path, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}
	state, err := InspectBackup(ctx, path)
	if err != nil {
		info.StateError = err.Error()
		return info, nil
	}
	info.LastUpdated = state.LastUpdated
	info.Counts = CountHistories(state)
	return info, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
