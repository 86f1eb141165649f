package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

var ErrUnknownMonth = errors.New("unknown goal month")

// phaseBounds holds the highest module number of phases 1 through 7.
var phaseBounds = []int{11, 20, 31, 45, 49, 83, 91}

type Phase struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	FirstMod int    `json:"first_module"`
	LastMod  int    `json:"last_module"`
	Weeks    string `json:"weeks"`
	Focus    string `json:"focus"`
}

var phases = []Phase{
	{1, "Fundamentals", 1, 11, "6-8", "Data Structures & Algorithms"},
	{2, "Systems Programming", 12, 20, "8-10", "Redis Implementation, Networking"},
	{3, "Web Development", 21, 31, "8-10", "FastAPI, Authentication, APIs"},
	{4, "Containerization", 32, 45, "6-8", "Docker, DevOps, CI/CD"},
	{5, "Cloud & AWS", 46, 49, "4-6", "AWS Services, Deployment"},
	{6, "Advanced Backend", 50, 83, "12-14", "Distributed Systems, Real-time"},
	{7, "Workflow Orchestration", 84, 91, "4-6", "Temporal, Complex Workflows"},
	{8, "Platform Engineering", 92, 102, "6-8", "Multi-tenant Cloud Platform"},
}

func Phases() []Phase {
	out := make([]Phase, len(phases))
	copy(out, phases)
	return out
}

// CurrentPhase maps a completed module count to a curriculum phase in 1..8.
func CurrentPhase(modulesCompleted int) int {
	for i, bound := range phaseBounds {
		if modulesCompleted <= bound {
			return i + 1
		}
	}
	return len(phaseBounds) + 1
}

func WeightLost(s model.UserData) float64 {
	return s.StartWeight - s.CurrentWeight
}

// WeightProgress is the share of the planned loss achieved, clamped to 0..100.
func WeightProgress(s model.UserData) float64 {
	planned := s.StartWeight - s.TargetWeight
	if planned == 0 {
		return 0
	}
	return clampPercent(WeightLost(s) / planned * 100)
}

func StudyProgress(s model.UserData) float64 {
	return percent(float64(s.ModulesCompleted), float64(s.TotalModules))
}

func GymProgress(s model.UserData) float64 {
	return percent(float64(s.WeeklyWorkouts), float64(s.TargetWorkouts))
}

func WalkingProgress(s model.UserData) float64 {
	return percent(float64(s.DailySteps), float64(s.TargetSteps))
}

func DistanceProgress(s model.UserData) float64 {
	return percent(s.DailyDistance, s.TargetDistance)
}

// CravingResistanceRate is 0 when no cravings have been logged.
func CravingResistanceRate(s model.UserData) float64 {
	return percent(float64(s.TotalCravingsResisted), float64(len(s.CravingHistory)))
}

type MonthProgress struct {
	Month            string            `json:"month"`
	Year             int               `json:"year,omitempty"`
	Goal             model.MonthlyGoal `json:"goal"`
	Steps            int               `json:"steps"`
	Distance         float64           `json:"distance"`
	StepsPct         float64           `json:"steps_pct"`
	DistancePct      float64           `json:"distance_pct"`
	StepsAchieved    bool              `json:"steps_achieved"`
	DistanceAchieved bool              `json:"distance_achieved"`
	WeightAchieved   bool              `json:"weight_achieved"`
	ModulesAchieved  bool              `json:"modules_achieved"`
}

// MonthlyProgress sums the walking entries of the goal month named month and
// compares them with that month's targets. The year comes from the plan start
// date: each goal month is the first such month on or after the start month.
// When the start date cannot be parsed, entries of that month in any year count.
func MonthlyProgress(s model.UserData, month string) (MonthProgress, error) {
	name, goal, ok := lookupGoal(s, month)
	if !ok {
		return MonthProgress{}, fmt.Errorf("%w %q", ErrUnknownMonth, month)
	}
	calMonth, ok := parseMonthName(name)
	if !ok {
		return MonthProgress{}, fmt.Errorf("%w %q", ErrUnknownMonth, month)
	}
	year := planYear(s.StartDate, calMonth)

	out := MonthProgress{Month: name, Year: year, Goal: goal}
	for _, e := range s.WalkingHistory {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Month() != calMonth || (year != 0 && d.Year() != year) {
			continue
		}
		out.Steps += e.Steps
		out.Distance += e.Distance
	}
	out.StepsPct = percent(float64(out.Steps), float64(goal.StepsTarget))
	out.DistancePct = percent(out.Distance, goal.DistanceTarget)
	out.StepsAchieved = out.Steps >= goal.StepsTarget
	out.DistanceAchieved = out.Distance >= goal.DistanceTarget
	out.WeightAchieved = s.CurrentWeight <= goal.WeightTarget
	out.ModulesAchieved = s.ModulesCompleted >= goal.ModulesTarget
	return out, nil
}

// AllMonthlyProgress returns progress for every goal month in plan order.
func AllMonthlyProgress(s model.UserData) []MonthProgress {
	out := make([]MonthProgress, 0, len(s.MonthlyGoals))
	for name := range s.MonthlyGoals {
		p, err := MonthlyProgress(s, name)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		mi, _ := parseMonthName(out[i].Month)
		mj, _ := parseMonthName(out[j].Month)
		ki := out[i].Year*12 + int(mi)
		kj := out[j].Year*12 + int(mj)
		if ki != kj {
			return ki < kj
		}
		return out[i].Month < out[j].Month
	})
	return out
}

func lookupGoal(s model.UserData, month string) (string, model.MonthlyGoal, bool) {
	want := strings.TrimSpace(month)
	if g, ok := s.MonthlyGoals[want]; ok {
		return want, g, true
	}
	for name, g := range s.MonthlyGoals {
		if strings.EqualFold(name, want) {
			return name, g, true
		}
	}
	return "", model.MonthlyGoal{}, false
}

func parseMonthName(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) || (len(name) >= 3 && strings.EqualFold(m.String()[:3], name)) {
			return m, true
		}
	}
	return 0, false
}

// planYear returns the year of the first occurrence of month on or after the
// start date's month, or 0 if startDate is not a valid date.
func planYear(startDate string, month time.Month) int {
	start, err := time.Parse(dateLayout, strings.TrimSpace(startDate))
	if err != nil {
		return 0
	}
	if month < start.Month() {
		return start.Year() + 1
	}
	return start.Year()
}

func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
