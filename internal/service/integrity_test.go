package service_test

import (
	"context"
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/service"
)

func TestRunDoctorHealthyAndEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newTestKV(t)

	report, err := service.RunDoctor(ctx, kv, false)
	if err != nil {
		t.Fatalf("doctor on empty store: %v", err)
	}
	if report.StatePresent || !report.Healthy() {
		t.Fatalf("expected healthy empty store, got %+v", report)
	}

	if err := service.NewStore(kv, nil).Save(ctx, service.DefaultUserData(testNow)); err != nil {
		t.Fatalf("save: %v", err)
	}
	report, err = service.RunDoctor(ctx, kv, false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !report.StatePresent || !report.StateValid || !report.Healthy() {
		t.Fatalf("expected healthy state, got %+v", report)
	}
}

func TestRunDoctorFixClearsCorruptState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newTestKV(t)
	if err := kv.Set(ctx, service.StorageKey, []byte("[]")); err != nil {
		t.Fatalf("seed corrupt state: %v", err)
	}
	if err := kv.Set(ctx, "stray", []byte("x")); err != nil {
		t.Fatalf("seed stray key: %v", err)
	}

	report, err := service.RunDoctor(ctx, kv, false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.StateValid || report.StateError == "" || report.Healthy() {
		t.Fatalf("expected invalid state, got %+v", report)
	}
	if len(report.UnknownKeys) != 1 || report.UnknownKeys[0] != "stray" {
		t.Fatalf("expected stray key reported, got %v", report.UnknownKeys)
	}

	report, err = service.RunDoctor(ctx, kv, true)
	if err != nil {
		t.Fatalf("doctor fix: %v", err)
	}
	if !report.ClearedState {
		t.Fatalf("expected corrupt state cleared")
	}
	if _, ok, _ := kv.Get(ctx, service.StorageKey); ok {
		t.Fatalf("state key still present after fix")
	}
}
