package service_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/saadjs/lifetrack-cli/internal/service"
)

func TestImportPartialMergesOverDefaults(t *testing.T) {
	t.Parallel()
	got, err := service.ImportSnapshot([]byte(`{"currentWeight":110,"unknownKey":true,"name":null}`), testNow)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := service.DefaultUserData(testNow)
	want.CurrentWeight = 110
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("partial import mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestImportReplacesCompositeFields(t *testing.T) {
	t.Parallel()
	raw := []byte(`{
		"weeklySchedule": {"Monday": {"study": true, "studyHours": 2}},
		"monthlyGoals": {"January": {"weightTarget": 100, "stepsTarget": 1000}},
		"fastingWindow": {"start": "20:00"}
	}`)
	got, err := service.ImportSnapshot(raw, testNow)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got.WeeklySchedule) != 1 || !got.WeeklySchedule["Monday"].Study {
		t.Fatalf("expected schedule to be replaced, got %+v", got.WeeklySchedule)
	}
	if len(got.MonthlyGoals) != 1 || got.MonthlyGoals["January"].StepsTarget != 1000 {
		t.Fatalf("expected goals to be replaced, got %+v", got.MonthlyGoals)
	}
	if got.FastingWindow.Start != "20:00" || got.FastingWindow.End != "" {
		t.Fatalf("expected fasting window to be replaced, got %+v", got.FastingWindow)
	}
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "{", "[1,2]", "42", "null", `{"currentWeight":"heavy"}`} {
		_, err := service.ImportSnapshot([]byte(raw), testNow)
		var perr *service.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("import %q: expected *ParseError, got %v", raw, err)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	want := populatedState(t)
	b, err := service.ExportSnapshot(want)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := service.ImportSnapshot(b, testNow)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("export/import mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestExportFileName(t *testing.T) {
	t.Parallel()
	if got := service.ExportFileName(testNow); got != "life_optimization_data_2025-08-14.json" {
		t.Fatalf("unexpected export name %q", got)
	}
}

func TestImportReplacesCompositeFieldsWithMixedCaseKeys(t *testing.T) {
	t.Parallel()
	raw := []byte(`{
		"WeeklySchedule": {"Monday": {"study": true}},
		"MONTHLYGOALS": {"March": {"stepsTarget": 5}},
		"FastingWindow": {"end": "10:00"}
	}`)
	got, err := service.ImportSnapshot(raw, testNow)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got.WeeklySchedule) != 1 || !got.WeeklySchedule["Monday"].Study {
		t.Fatalf("expected schedule replaced wholesale, got %+v", got.WeeklySchedule)
	}
	if len(got.MonthlyGoals) != 1 || got.MonthlyGoals["March"].StepsTarget != 5 {
		t.Fatalf("expected goals replaced wholesale, got %+v", got.MonthlyGoals)
	}
	if got.FastingWindow.Start != "" || got.FastingWindow.End != "10:00" {
		t.Fatalf("expected fasting window replaced, got %+v", got.FastingWindow)
	}
}
