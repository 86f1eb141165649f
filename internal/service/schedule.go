package service

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

var ErrUnknownDay = errors.New("unknown schedule day")

type Activity string

const (
	ActivityStudy Activity = "study"
	ActivityGym   Activity = "gym"
)

func ParseActivity(s string) (Activity, error) {
	switch a := Activity(strings.ToLower(strings.TrimSpace(s))); a {
	case ActivityStudy, ActivityGym:
		return a, nil
	}
	return "", fmt.Errorf("invalid activity %q (use study or gym)", s)
}

// ToggleDayCompleted flips a day's completed flag. Un-completing a day also
// clears its study and gym flags.
func (m Mutator) ToggleDayCompleted(s model.UserData, day string) (model.UserData, error) {
	name, current, err := lookupDay(s, day)
	if err != nil {
		return s, err
	}
	if current.Completed {
		current.Study = false
		current.Gym = false
	}
	current.Completed = !current.Completed
	return m.ApplyFieldUpdate(s, FieldUpdate{WeeklySchedule: withDay(s.WeeklySchedule, name, current)}), nil
}

func (m Mutator) ToggleActivity(s model.UserData, day string, activity Activity) (model.UserData, error) {
	name, current, err := lookupDay(s, day)
	if err != nil {
		return s, err
	}
	switch activity {
	case ActivityStudy:
		current.Study = !current.Study
	case ActivityGym:
		current.Gym = !current.Gym
	default:
		return s, fmt.Errorf("invalid activity %q (use study or gym)", activity)
	}
	return m.ApplyFieldUpdate(s, FieldUpdate{WeeklySchedule: withDay(s.WeeklySchedule, name, current)}), nil
}

// lookupDay matches day case-insensitively against the schedule keys.
func lookupDay(s model.UserData, day string) (string, model.DaySchedule, error) {
	want := strings.TrimSpace(day)
	for name, d := range s.WeeklySchedule {
		if strings.EqualFold(name, want) {
			return name, d, nil
		}
	}
	return "", model.DaySchedule{}, fmt.Errorf("%w %q", ErrUnknownDay, day)
}

func withDay(schedule map[string]model.DaySchedule, name string, d model.DaySchedule) map[string]model.DaySchedule {
	out := maps.Clone(schedule)
	out[name] = d
	return out
}
