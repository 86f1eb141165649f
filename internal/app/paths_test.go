package app

import (
	"path/filepath"
	"testing"
)

func TestDefaultDBPathHonorsEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv(EnvDBPath, want)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEnsureDBDirCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "lifetrack.db")
	if err := EnsureDBDir(path); err != nil {
		t.Fatalf("ensure db dir: %v", err)
	}
	if err := EnsureDBDir(path); err != nil {
		t.Fatalf("ensure db dir twice: %v", err)
	}
}
