package service

import (
	"time"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

const (
	planStartWeight    = 114
	planTargetWeight   = 90
	planTotalModules   = 102
	planTargetWorkouts = 6
	planTargetSteps    = 12000
	planTargetDistance = 8.5
	planTargetCalories = 1400
	planStartDate      = "2025-07-01"

	// Weekly hour targets used by the study and workout views.
	weeklyStudyHoursTarget   = 25.5
	weeklyWorkoutHoursTarget = 12
	planWeeks                = 24
)

// DefaultUserData returns the initial state for the six month plan.
// Only LastUpdated depends on now.
func DefaultUserData(now time.Time) model.UserData {
	return model.UserData{
		Name:   "Sirajul",
		Age:    28,
		Height: 168,

		CurrentWeight: planStartWeight,
		TargetWeight:  planTargetWeight,
		StartWeight:   planStartWeight,
		WeightHistory: []model.WeightEntry{},

		ModulesCompleted: 0,
		TotalModules:     planTotalModules,
		CurrentPhase:     1,
		StudyHistory:     []model.StudySession{},

		TargetWorkouts: planTargetWorkouts,
		WorkoutHistory: []model.WorkoutSession{},

		TargetSteps:    planTargetSteps,
		TargetDistance: planTargetDistance,
		WalkingHistory: []model.WalkingEntry{},

		CravingHistory: []model.CravingEntry{},

		TargetCalories: planTargetCalories,

		WeeklySchedule: defaultWeeklySchedule(),
		MonthlyGoals:   defaultMonthlyGoals(),
		FastingWindow:  model.FastingWindow{Start: "18:00", End: "12:00"},

		StartDate:   planStartDate,
		LastUpdated: formatTimestamp(now),
	}
}

func defaultWeeklySchedule() map[string]model.DaySchedule {
	schedule := make(map[string]model.DaySchedule, len(model.ScheduleDays))
	for _, day := range model.ScheduleDays {
		schedule[day] = model.DaySchedule{StudyHours: 3.5, GymHours: 1.5}
	}
	// Fridays carry the long study block.
	schedule["Friday"] = model.DaySchedule{StudyHours: 8, GymHours: 2.5}
	return schedule
}

func defaultMonthlyGoals() map[string]model.MonthlyGoal {
	return map[string]model.MonthlyGoal{
		"July":      {WeightTarget: 110, ModulesTarget: 9, StepsTarget: 372000, DistanceTarget: 263.5},
		"August":    {WeightTarget: 106, ModulesTarget: 18, StepsTarget: 372000, DistanceTarget: 263.5},
		"September": {WeightTarget: 102, ModulesTarget: 27, StepsTarget: 360000, DistanceTarget: 255},
		"October":   {WeightTarget: 98, ModulesTarget: 36, StepsTarget: 372000, DistanceTarget: 263.5},
		"November":  {WeightTarget: 94, ModulesTarget: 45, StepsTarget: 360000, DistanceTarget: 255},
		"December":  {WeightTarget: 90, ModulesTarget: 54, StepsTarget: 372000, DistanceTarget: 263.5},
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
