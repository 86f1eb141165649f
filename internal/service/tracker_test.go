package service_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
)

func TestTrackerPersistsEachChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newTestKV(t)
	tr := service.NewTracker(ctx, service.NewStore(kv, nil), fixedMutator(testNow), nil)

	if !tr.AddWeight(ctx, model.WeightEntry{Weight: 111}) {
		t.Fatalf("expected weight to be accepted")
	}
	if tr.AddWeight(ctx, model.WeightEntry{Weight: -1}) {
		t.Fatalf("expected negative weight to be rejected")
	}
	if err := tr.ToggleDayCompleted(ctx, "Sunday"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reopened := service.NewTracker(ctx, service.NewStore(kv, nil), fixedMutator(testNow), nil)
	got := reopened.State()
	if got.CurrentWeight != 111 || len(got.WeightHistory) != 1 {
		t.Fatalf("expected weight persisted, got %+v", got)
	}
	if !got.WeeklySchedule["Sunday"].Completed {
		t.Fatalf("expected schedule persisted")
	}
}

func TestTrackerKeepsChangesWhenSaveFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	tr := service.NewTracker(ctx, service.NewStore(brokenKV{}, logger), fixedMutator(testNow), logger)

	if !tr.AddStudySession(ctx, model.StudySession{Hours: 4, Modules: []int{3}}) {
		t.Fatalf("expected session to be accepted")
	}
	if got := tr.State(); got.ModulesCompleted != 3 || got.StudyStreak != 1 {
		t.Fatalf("expected in-memory state to advance, got %+v", got)
	}
	if !strings.Contains(buf.String(), "keeping changes in memory") {
		t.Fatalf("expected save failure to be logged, got %q", buf.String())
	}
}

func TestTrackerImportFailureKeepsState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := service.NewTracker(ctx, service.NewStore(newMemKV(), nil), fixedMutator(testNow), nil)
	tr.AddWalkingEntry(ctx, model.WalkingEntry{Steps: 3000, Distance: 2})
	before := tr.State()

	err := tr.Import(ctx, []byte("not json"))
	var perr *service.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !reflect.DeepEqual(tr.State(), before) {
		t.Fatalf("state changed after a failed import")
	}

	if err := tr.Import(ctx, []byte(`{"name":"Imported","dailySteps":42}`)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := tr.State(); got.Name != "Imported" || got.DailySteps != 42 || len(got.WalkingHistory) != 0 {
		t.Fatalf("expected imported state, got %+v", got)
	}
}

func TestTrackerResetRequiresConfirmation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMemKV()
	tr := service.NewTracker(ctx, service.NewStore(kv, nil), fixedMutator(testNow), nil)
	tr.AddWorkoutSession(ctx, model.WorkoutSession{Type: model.WorkoutUpper, Duration: 1.5})

	if err := tr.Reset(ctx, false); !errors.Is(err, service.ErrResetNotConfirmed) {
		t.Fatalf("expected ErrResetNotConfirmed, got %v", err)
	}
	if len(tr.State().WorkoutHistory) != 1 {
		t.Fatalf("unconfirmed reset changed state")
	}
	if err := tr.Reset(ctx, true); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !reflect.DeepEqual(tr.State(), service.DefaultUserData(testNow)) {
		t.Fatalf("expected defaults after reset")
	}
	if _, ok, _ := kv.Get(ctx, service.StorageKey); ok {
		t.Fatalf("expected stored state removed by reset")
	}
}

func TestTrackerResetLogsClearFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	tr := service.NewTracker(ctx, service.NewStore(brokenKV{}, logger), fixedMutator(testNow), logger)
	buf.Reset()

	if err := tr.Reset(ctx, true); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(buf.String(), "clear state") {
		t.Fatalf("expected clear failure to be logged, got %q", buf.String())
	}
	if !reflect.DeepEqual(tr.State(), service.DefaultUserData(testNow)) {
		t.Fatalf("expected defaults in memory after reset")
	}
}

func TestTrackerUpdateFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := service.NewTracker(ctx, service.NewStore(newMemKV(), nil), fixedMutator(testNow), nil)
	water := 2.5
	got := tr.UpdateFields(ctx, service.FieldUpdate{WaterIntake: &water})
	if got.WaterIntake != 2.5 || tr.State().WaterIntake != 2.5 {
		t.Fatalf("expected water intake updated, got %v", got.WaterIntake)
	}
}
