package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

// ParseError reports an import payload that is not a valid state document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse import data: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExportSnapshot renders state as indented JSON.
func ExportSnapshot(state model.UserData) ([]byte, error) {
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export json: %w", err)
	}
	return b, nil
}

// ExportFileName is the suggested download name for an export made at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("life_optimization_data_%s.json", now.In(time.Local).Format(dateLayout))
}

// ImportSnapshot parses raw and merges it over the defaults, like Load, but
// returns a *ParseError instead of falling back.
func ImportSnapshot(raw []byte, now time.Time) (model.UserData, error) {
	state, err := MergeOverDefaults(raw, now)
	if err != nil {
		return model.UserData{}, &ParseError{Err: err}
	}
	return state, nil
}

// MergeOverDefaults decodes raw as a JSON object and lays its top-level keys
// over DefaultUserData(now). A present key replaces the default value
// wholesale; absent keys keep the default, unknown keys are ignored and a
// null value keeps the default.
func MergeOverDefaults(raw []byte, now time.Time) (model.UserData, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.UserData{}, fmt.Errorf("decode state object: %w", err)
	}
	if fields == nil {
		return model.UserData{}, fmt.Errorf("decode state object: expected a JSON object")
	}

	for k, v := range fields {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			delete(fields, k)
		}
	}
	cleaned, err := json.Marshal(fields)
	if err != nil {
		return model.UserData{}, fmt.Errorf("re-encode state object: %w", err)
	}

	state := DefaultUserData(now)
	// Composite fields are replaced rather than merged key by key. Keys match
	// case-insensitively, as they do in the decode below.
	if hasField(fields, "weeklySchedule") {
		state.WeeklySchedule = nil
	}
	if hasField(fields, "monthlyGoals") {
		state.MonthlyGoals = nil
	}
	if hasField(fields, "fastingWindow") {
		state.FastingWindow = model.FastingWindow{}
	}
	if err := json.Unmarshal(cleaned, &state); err != nil {
		return model.UserData{}, fmt.Errorf("decode state fields: %w", err)
	}
	fillNilCollections(&state)
	return state, nil
}

func hasField(fields map[string]json.RawMessage, name string) bool {
	for k := range fields {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

func fillNilCollections(s *model.UserData) {
	s.WeightHistory = nonNil(s.WeightHistory)
	s.StudyHistory = nonNil(s.StudyHistory)
	s.WorkoutHistory = nonNil(s.WorkoutHistory)
	s.WalkingHistory = nonNil(s.WalkingHistory)
	s.CravingHistory = nonNil(s.CravingHistory)
	if s.WeeklySchedule == nil {
		s.WeeklySchedule = map[string]model.DaySchedule{}
	}
	if s.MonthlyGoals == nil {
		s.MonthlyGoals = map[string]model.MonthlyGoal{}
	}
}
