package service

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/lifetrack-cli/internal/model"
)

const (
	dateLayout = "2006-01-02"

	maxWeeklyWorkouts   = 7
	studyStreakMinHours = 3
)

// Mutator derives the next UserData snapshot from the current one. Every
// method leaves its input untouched and returns the input unchanged when the
// incoming entry is not acceptable.
type Mutator struct {
	Now   func() time.Time
	NewID func() string
}

func NewMutator() Mutator {
	return Mutator{Now: time.Now, NewID: uuid.NewString}
}

func (m Mutator) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func (m Mutator) newID() string {
	if m.NewID == nil {
		return uuid.NewString()
	}
	return m.NewID()
}

// Today is the local calendar day used for same-day aggregation.
func (m Mutator) Today() string {
	return m.now().In(time.Local).Format(dateLayout)
}

// FieldUpdate overrides top-level fields. Nil fields are left alone.
type FieldUpdate struct {
	Name   *string
	Age    *int
	Height *float64

	CurrentWeight *float64
	TargetWeight  *float64
	StartWeight   *float64

	ModulesCompleted *int
	TotalModules     *int
	TotalStudyHours  *float64

	WeeklyWorkouts *int
	TargetWorkouts *int

	DailySteps     *int
	TargetSteps    *int
	DailyDistance  *float64
	TargetDistance *float64

	CaloriesConsumed *int
	TargetCalories   *int
	WaterIntake      *float64
	SleepHours       *float64

	WeeklySchedule map[string]model.DaySchedule
	MonthlyGoals   map[string]model.MonthlyGoal
	FastingWindow  *model.FastingWindow

	StartDate *string
}

// ApplyFieldUpdate merges the set fields of u over s. WeeklyWorkouts is kept
// within 0..7, ModulesCompleted never moves down and CurrentPhase follows it.
func (m Mutator) ApplyFieldUpdate(s model.UserData, u FieldUpdate) model.UserData {
	next := cloneUserData(s)
	setIf(&next.Name, u.Name)
	setIf(&next.Age, u.Age)
	setIf(&next.Height, u.Height)
	setIf(&next.CurrentWeight, u.CurrentWeight)
	setIf(&next.TargetWeight, u.TargetWeight)
	setIf(&next.StartWeight, u.StartWeight)
	if u.ModulesCompleted != nil {
		next.ModulesCompleted = max(next.ModulesCompleted, *u.ModulesCompleted)
		next.CurrentPhase = CurrentPhase(next.ModulesCompleted)
	}
	setIf(&next.TotalModules, u.TotalModules)
	setIf(&next.TotalStudyHours, u.TotalStudyHours)
	if u.WeeklyWorkouts != nil {
		next.WeeklyWorkouts = min(max(*u.WeeklyWorkouts, 0), maxWeeklyWorkouts)
	}
	setIf(&next.TargetWorkouts, u.TargetWorkouts)
	setIf(&next.DailySteps, u.DailySteps)
	setIf(&next.TargetSteps, u.TargetSteps)
	setIf(&next.DailyDistance, u.DailyDistance)
	setIf(&next.TargetDistance, u.TargetDistance)
	setIf(&next.CaloriesConsumed, u.CaloriesConsumed)
	setIf(&next.TargetCalories, u.TargetCalories)
	setIf(&next.WaterIntake, u.WaterIntake)
	setIf(&next.SleepHours, u.SleepHours)
	if u.WeeklySchedule != nil {
		next.WeeklySchedule = maps.Clone(u.WeeklySchedule)
	}
	if u.MonthlyGoals != nil {
		next.MonthlyGoals = maps.Clone(u.MonthlyGoals)
	}
	setIf(&next.FastingWindow, u.FastingWindow)
	setIf(&next.StartDate, u.StartDate)
	next.LastUpdated = formatTimestamp(m.now())
	return next
}

func (m Mutator) AppendWeightEntry(s model.UserData, e model.WeightEntry) model.UserData {
	next, _ := m.appendWeight(s, e)
	return next
}

func (m Mutator) appendWeight(s model.UserData, e model.WeightEntry) (model.UserData, bool) {
	if e.Weight <= 0 {
		return s, false
	}
	e.ID = m.newID()
	e.Date = m.dateOrToday(e.Date)
	next := cloneUserData(s)
	next.WeightHistory = append(next.WeightHistory, e)
	next.CurrentWeight = e.Weight
	next.LastUpdated = formatTimestamp(m.now())
	return next, true
}

// AppendStudySession records a session. Sessions of three hours or more
// extend the study streak; shorter ones leave it as is. CurrentPhase is
// refreshed from the module count.
func (m Mutator) AppendStudySession(s model.UserData, sess model.StudySession) model.UserData {
	next, _ := m.appendStudy(s, sess)
	return next
}

func (m Mutator) appendStudy(s model.UserData, sess model.StudySession) (model.UserData, bool) {
	if sess.Hours <= 0 {
		return s, false
	}
	sess.ID = m.newID()
	sess.Date = m.dateOrToday(sess.Date)
	sess.Modules = nonNil(slices.Clone(sess.Modules))
	sess.Topics = nonNil(slices.Clone(sess.Topics))

	highest := 0
	if len(sess.Modules) > 0 {
		highest = slices.Max(sess.Modules)
	}

	next := cloneUserData(s)
	next.StudyHistory = append(next.StudyHistory, sess)
	next.TotalStudyHours += sess.Hours
	next.ModulesCompleted = max(next.ModulesCompleted, highest)
	next.CurrentPhase = CurrentPhase(next.ModulesCompleted)
	if sess.Hours >= studyStreakMinHours {
		next.StudyStreak++
	}
	next.LastUpdated = formatTimestamp(m.now())
	return next, true
}

func (m Mutator) AppendWorkoutSession(s model.UserData, w model.WorkoutSession) model.UserData {
	next, _ := m.appendWorkout(s, w)
	return next
}

func (m Mutator) appendWorkout(s model.UserData, w model.WorkoutSession) (model.UserData, bool) {
	if w.Duration <= 0 || !w.Type.Valid() {
		return s, false
	}
	w.ID = m.newID()
	w.Date = m.dateOrToday(w.Date)
	w.Exercises = nonNil(slices.Clone(w.Exercises))

	next := cloneUserData(s)
	next.WorkoutHistory = append(next.WorkoutHistory, w)
	next.TotalWorkoutHours += w.Duration
	next.WeeklyWorkouts = min(next.WeeklyWorkouts+1, maxWeeklyWorkouts)
	if next.WeeklyWorkouts >= next.TargetWorkouts {
		next.GymStreak++
	}
	next.LastUpdated = formatTimestamp(m.now())
	return next, true
}

// AppendWalkingEntry records a walk and recomputes today's totals from the
// full history rather than adding to the previous totals.
func (m Mutator) AppendWalkingEntry(s model.UserData, e model.WalkingEntry) model.UserData {
	next, _ := m.appendWalking(s, e)
	return next
}

func (m Mutator) appendWalking(s model.UserData, e model.WalkingEntry) (model.UserData, bool) {
	if (e.Steps <= 0 && e.Distance <= 0) || e.Steps < 0 || e.Distance < 0 || e.Duration < 0 {
		return s, false
	}
	e.ID = m.newID()
	e.Date = m.dateOrToday(e.Date)

	next := cloneUserData(s)
	next.WalkingHistory = append(next.WalkingHistory, e)

	steps, distance := dayWalkingTotals(next.WalkingHistory, m.Today())
	next.DailySteps = steps
	next.DailyDistance = distance
	next.TotalWalkingMinutes += e.Duration
	if steps >= next.TargetSteps || distance >= next.TargetDistance {
		next.WalkingStreak++
	}
	next.LastUpdated = formatTimestamp(m.now())
	return next, true
}

// AppendCravingEntry records a craving. Resisting or substituting extends the
// streak; giving in or delaying resets it to zero.
func (m Mutator) AppendCravingEntry(s model.UserData, c model.CravingEntry) model.UserData {
	next, _ := m.appendCraving(s, c)
	return next
}

func (m Mutator) appendCraving(s model.UserData, c model.CravingEntry) (model.UserData, bool) {
	c.Food = strings.TrimSpace(c.Food)
	if c.Food == "" || c.Intensity < 1 || c.Intensity > 5 {
		return s, false
	}
	if !c.Trigger.Valid() || !c.Mood.Valid() || !c.Action.Valid() {
		return s, false
	}
	now := m.now()
	c.ID = m.newID()
	c.Date = m.dateOrToday(c.Date)
	if strings.TrimSpace(c.Time) == "" {
		c.Time = now.In(time.Local).Format("15:04")
	}
	if strings.TrimSpace(c.Location) == "" {
		c.Location = "Not specified"
	}
	if c.Action != model.ActionSubstituted {
		c.Substitute = ""
	}

	next := cloneUserData(s)
	next.CravingHistory = append(next.CravingHistory, c)
	switch c.Action {
	case model.ActionResisted, model.ActionSubstituted:
		next.CravingStreak++
		next.TotalCravingsResisted++
	case model.ActionGaveIn, model.ActionDelayed:
		next.CravingStreak = 0
	}
	next.LastUpdated = formatTimestamp(now)
	return next, true
}

// ResetState discards all history.
func (m Mutator) ResetState() model.UserData {
	return DefaultUserData(m.now())
}

func (m Mutator) dateOrToday(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return m.Today()
	}
	return date
}

func dayWalkingTotals(history []model.WalkingEntry, day string) (int, float64) {
	steps := 0
	distance := 0.0
	for _, e := range history {
		if e.Date != day {
			continue
		}
		steps += e.Steps
		distance += e.Distance
	}
	return steps, distance
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// cloneUserData copies s so that appends and map writes on the result never
// reach the slices or maps of s.
func cloneUserData(s model.UserData) model.UserData {
	next := s
	next.WeightHistory = nonNil(slices.Clone(s.WeightHistory))
	next.StudyHistory = nonNil(slices.Clone(s.StudyHistory))
	next.WorkoutHistory = nonNil(slices.Clone(s.WorkoutHistory))
	next.WalkingHistory = nonNil(slices.Clone(s.WalkingHistory))
	next.CravingHistory = nonNil(slices.Clone(s.CravingHistory))
	next.WeeklySchedule = maps.Clone(s.WeeklySchedule)
	next.MonthlyGoals = maps.Clone(s.MonthlyGoals)
	return next
}
