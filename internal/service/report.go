package service

import (
	"time"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

type TriggerStat struct {
	Trigger model.CravingTrigger `json:"trigger"`
	Count   int                  `json:"count"`
}

type IntensityStat struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

type Milestone struct {
	Title       string  `json:"title"`
	Target      float64 `json:"target"`
	Achieved    bool    `json:"achieved"`
	Description string  `json:"description"`
}

// CravingTriggerStats counts cravings per trigger, in trigger declaration order.
func CravingTriggerStats(s model.UserData) []TriggerStat {
	counts := make(map[model.CravingTrigger]int, len(model.CravingTriggers))
	for _, c := range s.CravingHistory {
		counts[c.Trigger]++
	}
	out := make([]TriggerStat, 0, len(model.CravingTriggers))
	for _, t := range model.CravingTriggers {
		out = append(out, TriggerStat{Trigger: t, Count: counts[t]})
	}
	return out
}

func CravingIntensityStats(s model.UserData) []IntensityStat {
	var counts [6]int
	for _, c := range s.CravingHistory {
		if c.Intensity >= 1 && c.Intensity <= 5 {
			counts[c.Intensity]++
		}
	}
	out := make([]IntensityStat, 0, 5)
	for level := 1; level <= 5; level++ {
		out = append(out, IntensityStat{Level: level, Count: counts[level]})
	}
	return out
}

func WalkingMilestones(s model.UserData) []Milestone {
	return []Milestone{
		{"First 10K Day", 10000, s.DailySteps >= 10000, "Reached basic fitness goal"},
		{"Target Achiever", 12000, s.DailySteps >= 12000, "Daily target accomplished"},
		{"Distance Walker", 8, s.DailyDistance >= 8, "8km+ in a single day"},
		{"Marathon Walker", 15000, s.DailySteps >= 15000, "Exceeded expectations"},
		{"Week Warrior", 7, s.WalkingStreak >= 7, "7-day walking streak"},
		{"Monthly Master", 30, s.WalkingStreak >= 30, "30-day consistency"},
	}
}

func Recommendations(s model.UserData) []string {
	recs := make([]string, 0, 5)
	if WeightLost(s) < 4 {
		recs = append(recs, "Consider reviewing your diet and increasing cardio intensity")
	}
	if s.TotalStudyHours < 100 {
		recs = append(recs, "Aim for consistent 3+ hours of daily study")
	}
	if s.WeeklyWorkouts < 6 {
		recs = append(recs, "Try to complete 6 gym sessions per week")
	}
	if s.DailySteps < 10000 {
		recs = append(recs, "Increase daily steps to at least 10,000")
	}
	if s.CravingStreak < 7 {
		recs = append(recs, "Focus on building craving resistance streak")
	}
	return recs
}

type Report struct {
	GeneratedAt           string          `json:"generated_at"`
	WeightLost            float64         `json:"weight_lost"`
	WeightProgress        float64         `json:"weight_progress"`
	StudyProgress         float64         `json:"study_progress"`
	StudyHoursProgress    float64         `json:"study_hours_progress"`
	Phase                 Phase           `json:"phase"`
	GymProgress           float64         `json:"gym_progress"`
	WorkoutHoursProgress  float64         `json:"workout_hours_progress"`
	WalkingProgress       float64         `json:"walking_progress"`
	DistanceProgress      float64         `json:"distance_progress"`
	CravingResistanceRate float64         `json:"craving_resistance_rate"`
	CurrentMonth          *MonthProgress  `json:"current_month,omitempty"`
	Months                []MonthProgress `json:"months"`
	Triggers              []TriggerStat   `json:"triggers"`
	Intensities           []IntensityStat `json:"intensities"`
	Milestones            []Milestone     `json:"milestones"`
	Recommendations       []string        `json:"recommendations"`
}

// BuildReport gathers every derived metric for display. now selects the
// current month.
func BuildReport(s model.UserData, now time.Time) Report {
	phase := phases[CurrentPhase(s.ModulesCompleted)-1]
	r := Report{
		GeneratedAt:           formatTimestamp(now),
		WeightLost:            WeightLost(s),
		WeightProgress:        WeightProgress(s),
		StudyProgress:         StudyProgress(s),
		StudyHoursProgress:    percent(s.TotalStudyHours, weeklyStudyHoursTarget*planWeeks),
		Phase:                 phase,
		GymProgress:           GymProgress(s),
		WorkoutHoursProgress:  percent(s.TotalWorkoutHours, weeklyWorkoutHoursTarget*planWeeks),
		WalkingProgress:       WalkingProgress(s),
		DistanceProgress:      DistanceProgress(s),
		CravingResistanceRate: CravingResistanceRate(s),
		Months:                AllMonthlyProgress(s),
		Triggers:              CravingTriggerStats(s),
		Intensities:           CravingIntensityStats(s),
		Milestones:            WalkingMilestones(s),
		Recommendations:       Recommendations(s),
	}
	local := now.In(time.Local)
	for i := range r.Months {
		m, _ := parseMonthName(r.Months[i].Month)
		if m == local.Month() && (r.Months[i].Year == 0 || r.Months[i].Year == local.Year()) {
			cur := r.Months[i]
			r.CurrentMonth = &cur
			break
		}
	}
	return r
}
