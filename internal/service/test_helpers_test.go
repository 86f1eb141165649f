package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/db"
	"github.com/saadjs/lifetrack-cli/internal/service"
)

func newTestKV(t *testing.T) *db.KVStore {
	t.Helper()
	sqldb, _ := newTestDB(t)
	return db.NewKVStore(sqldb)
}

// newTestDB opens a migrated database in a temp dir and returns it with its path.
func newTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifetrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb, path
}

// fixedMutator stamps every change with now and numbers ids sequentially.
func fixedMutator(now time.Time) service.Mutator {
	var mu sync.Mutex
	n := 0
	return service.Mutator{
		Now: func() time.Time { return now },
		NewID: func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

var testNow = time.Date(2025, 8, 14, 9, 30, 0, 0, time.Local)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var errStoreDown = errors.New("store unavailable")

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errStoreDown }
func (brokenKV) Set(context.Context, string, []byte) error         { return errStoreDown }
func (brokenKV) Remove(context.Context, string) error              { return errStoreDown }
