package service_test

import (
	"errors"
	"math"
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCurrentPhaseBreakpoints(t *testing.T) {
	t.Parallel()
	tests := []struct {
		modules int
		want    int
	}{
		{0, 1}, {11, 1}, {12, 2}, {20, 2}, {21, 3}, {31, 3}, {45, 4},
		{46, 5}, {49, 5}, {50, 6}, {83, 6}, {84, 7}, {91, 7}, {92, 8}, {102, 8}, {150, 8},
	}
	for _, tc := range tests {
		if got := service.CurrentPhase(tc.modules); got != tc.want {
			t.Fatalf("CurrentPhase(%d) = %d; want %d", tc.modules, got, tc.want)
		}
	}
	if len(service.Phases()) != 8 {
		t.Fatalf("expected 8 phases")
	}
}

func TestProgressPercentages(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	s.CurrentWeight = 108
	s.ModulesCompleted = 51
	s.WeeklyWorkouts = 3
	s.DailySteps = 6000
	s.DailyDistance = 4.25

	if got := service.WeightProgress(s); !almostEqual(got, 25) {
		t.Fatalf("weight progress = %v; want 25", got)
	}
	if got := service.StudyProgress(s); !almostEqual(got, 50) {
		t.Fatalf("study progress = %v; want 50", got)
	}
	if got := service.GymProgress(s); !almostEqual(got, 50) {
		t.Fatalf("gym progress = %v; want 50", got)
	}
	if got := service.WalkingProgress(s); !almostEqual(got, 50) {
		t.Fatalf("walking progress = %v; want 50", got)
	}
	if got := service.DistanceProgress(s); !almostEqual(got, 50) {
		t.Fatalf("distance progress = %v; want 50", got)
	}
}

func TestWeightProgressClamped(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	s.CurrentWeight = 118
	if got := service.WeightProgress(s); got != 0 {
		t.Fatalf("expected gain to clamp at 0, got %v", got)
	}
	s.CurrentWeight = 85
	if got := service.WeightProgress(s); got != 100 {
		t.Fatalf("expected overshoot to clamp at 100, got %v", got)
	}
	s.StartWeight = s.TargetWeight
	if got := service.WeightProgress(s); got != 0 {
		t.Fatalf("expected 0 when no loss is planned, got %v", got)
	}
}

func TestCravingResistanceRateGuardsEmptyHistory(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	if got := service.CravingResistanceRate(s); got != 0 || math.IsNaN(got) {
		t.Fatalf("expected 0 for empty history, got %v", got)
	}

	m := fixedMutator(testNow)
	for _, a := range []model.CravingAction{model.ActionResisted, model.ActionGaveIn, model.ActionSubstituted, model.ActionDelayed} {
		s = m.AppendCravingEntry(s, model.CravingEntry{Food: "pizza", Intensity: 4, Trigger: model.TriggerSocial, Mood: model.MoodHappy, Action: a})
	}
	if got := service.CravingResistanceRate(s); !almostEqual(got, 50) {
		t.Fatalf("expected 50%% resistance, got %v", got)
	}
}

func TestMonthlyProgressUsesPlanYear(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	s.WalkingHistory = []model.WalkingEntry{
		{Date: "2025-08-01", Steps: 12000, Distance: 8.5},
		{Date: "2025-08-31", Steps: 10000, Distance: 7},
		{Date: "2024-08-15", Steps: 99999, Distance: 70},
		{Date: "2025-09-01", Steps: 5000, Distance: 3},
		{Date: "not-a-date", Steps: 5000, Distance: 3},
	}

	p, err := service.MonthlyProgress(s, "august")
	if err != nil {
		t.Fatalf("monthly progress: %v", err)
	}
	if p.Month != "August" || p.Year != 2025 {
		t.Fatalf("expected August 2025, got %s %d", p.Month, p.Year)
	}
	if p.Steps != 22000 || !almostEqual(p.Distance, 15.5) {
		t.Fatalf("expected 22000 steps and 15.5km, got %d and %v", p.Steps, p.Distance)
	}
	if p.StepsAchieved || p.DistanceAchieved {
		t.Fatalf("expected August goals not achieved")
	}
	if !almostEqual(p.StepsPct, 22000.0/372000*100) {
		t.Fatalf("unexpected steps pct %v", p.StepsPct)
	}

	if _, err := service.MonthlyProgress(s, "March"); !errors.Is(err, service.ErrUnknownMonth) {
		t.Fatalf("expected ErrUnknownMonth, got %v", err)
	}
}

func TestAllMonthlyProgressInPlanOrder(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	months := service.AllMonthlyProgress(s)
	want := []string{"July", "August", "September", "October", "November", "December"}
	if len(months) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(months))
	}
	for i, m := range months {
		if m.Month != want[i] {
			t.Fatalf("month %d = %s; want %s", i, m.Month, want[i])
		}
	}
}
