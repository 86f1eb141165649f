package service_test

import (
	"bytes"
	"context"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
)

func populatedState(t *testing.T) model.UserData {
	t.Helper()
	m := fixedMutator(testNow)
	s := service.DefaultUserData(testNow)
	s = m.AppendWeightEntry(s, model.WeightEntry{Weight: 112.4, Notes: "morning"})
	s = m.AppendStudySession(s, model.StudySession{Hours: 3.5, Modules: []int{1, 2}, Topics: []string{"arrays"}})
	s = m.AppendWorkoutSession(s, model.WorkoutSession{Type: model.WorkoutHIIT, Duration: 1, Exercises: []string{"burpees"}})
	s = m.AppendWalkingEntry(s, model.WalkingEntry{Steps: 8000, Distance: 5.6, Duration: 70, Location: "park"})
	s = m.AppendCravingEntry(s, model.CravingEntry{Food: "chips", Intensity: 3, Trigger: model.TriggerBoredom, Mood: model.MoodBored, Action: model.ActionSubstituted, Substitute: "apple"})
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := service.NewStore(newTestKV(t), nil)

	want := populatedState(t)
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := store.Load(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestStoreLoadMissingReturnsDefaults(t *testing.T) {
	t.Parallel()
	store := service.NewStore(newMemKV(), nil)
	got := store.Load(context.Background())
	if got.CurrentWeight != 114 || len(got.WeeklySchedule) != 7 || got.WeightHistory == nil {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestStoreLoadCorruptFallsBackAndLogs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMemKV()
	_ = kv.Set(ctx, service.StorageKey, []byte("{not json"))

	var buf bytes.Buffer
	store := service.NewStore(kv, log.New(&buf, "", 0))
	got := store.Load(ctx)
	if got.CurrentWeight != 114 || len(got.MonthlyGoals) != 6 {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if !strings.Contains(buf.String(), "using defaults") {
		t.Fatalf("expected a logged warning, got %q", buf.String())
	}
}

func TestStoreUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var buf bytes.Buffer
	store := service.NewStore(brokenKV{}, log.New(&buf, "", 0))

	got := store.Load(ctx)
	if got.TargetWeight != 90 {
		t.Fatalf("expected defaults from a broken store, got %+v", got)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected load failure to be logged")
	}
	if err := store.Save(ctx, got); err == nil {
		t.Fatalf("expected save to fail")
	}
	if err := store.Clear(ctx); err == nil {
		t.Fatalf("expected clear to fail")
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := service.NewStore(newTestKV(t), nil)
	if err := store.Save(ctx, populatedState(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := store.Load(ctx); len(got.WeightHistory) != 0 || got.CurrentWeight != 114 {
		t.Fatalf("expected defaults after clear, got %+v", got)
	}
}
