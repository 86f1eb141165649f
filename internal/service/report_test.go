package service_test

import (
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
)

func TestBuildReportFreshPlan(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	r := service.BuildReport(s, testNow)

	if r.Phase.Number != 1 || r.Phase.Name != "Fundamentals" {
		t.Fatalf("expected phase 1, got %+v", r.Phase)
	}
	if len(r.Recommendations) != 5 {
		t.Fatalf("expected every recommendation on a fresh plan, got %d", len(r.Recommendations))
	}
	if r.CurrentMonth == nil || r.CurrentMonth.Month != "August" {
		t.Fatalf("expected current month August, got %+v", r.CurrentMonth)
	}
	for _, m := range r.Milestones {
		if m.Achieved {
			t.Fatalf("expected no milestones on a fresh plan, got %s", m.Title)
		}
	}
}

func TestCravingBreakdowns(t *testing.T) {
	t.Parallel()
	m := fixedMutator(testNow)
	s := service.DefaultUserData(testNow)
	add := func(trigger model.CravingTrigger, intensity int) {
		s = m.AppendCravingEntry(s, model.CravingEntry{Food: "sweets", Intensity: intensity, Trigger: trigger, Mood: model.MoodNeutral, Action: model.ActionResisted})
	}
	add(model.TriggerStress, 5)
	add(model.TriggerStress, 4)
	add(model.TriggerHabit, 4)

	triggers := service.CravingTriggerStats(s)
	if len(triggers) != len(model.CravingTriggers) {
		t.Fatalf("expected a row per trigger, got %d", len(triggers))
	}
	counts := map[model.CravingTrigger]int{}
	for _, ts := range triggers {
		counts[ts.Trigger] = ts.Count
	}
	if counts[model.TriggerStress] != 2 || counts[model.TriggerHabit] != 1 || counts[model.TriggerOther] != 0 {
		t.Fatalf("unexpected trigger counts %v", counts)
	}

	levels := service.CravingIntensityStats(s)
	if levels[3].Level != 4 || levels[3].Count != 2 || levels[4].Count != 1 {
		t.Fatalf("unexpected intensity counts %+v", levels)
	}
}

func TestRecommendationsClearWhenOnTrack(t *testing.T) {
	t.Parallel()
	s := service.DefaultUserData(testNow)
	s.CurrentWeight = 104
	s.TotalStudyHours = 120
	s.WeeklyWorkouts = 6
	s.DailySteps = 12500
	s.CravingStreak = 9
	if recs := service.Recommendations(s); len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %v", recs)
	}
}
