package model

import "fmt"

type WeightEntry struct {
	ID     string  `json:"id,omitempty"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes,omitempty"`
}

type StudySession struct {
	ID      string   `json:"id,omitempty"`
	Date    string   `json:"date"`
	Hours   float64  `json:"hours"`
	Modules []int    `json:"modules"`
	Topics  []string `json:"topics"`
	Notes   string   `json:"notes,omitempty"`
}

type WorkoutSession struct {
	ID        string      `json:"id,omitempty"`
	Date      string      `json:"date"`
	Type      WorkoutType `json:"type"`
	Duration  float64     `json:"duration"`
	Exercises []string    `json:"exercises"`
	Notes     string      `json:"notes,omitempty"`
}

// WalkingEntry distance is in km and duration in minutes.
type WalkingEntry struct {
	ID       string  `json:"id,omitempty"`
	Date     string  `json:"date"`
	Steps    int     `json:"steps"`
	Distance float64 `json:"distance"`
	Duration int     `json:"duration"`
	Location string  `json:"location,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// CravingEntry intensity runs from 1 (mild) to 5 (intense).
type CravingEntry struct {
	ID         string         `json:"id,omitempty"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	Food       string         `json:"food"`
	Intensity  int            `json:"intensity"`
	Trigger    CravingTrigger `json:"trigger"`
	Location   string         `json:"location"`
	Mood       Mood           `json:"mood"`
	Action     CravingAction  `json:"action"`
	Substitute string         `json:"substitute,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

type DaySchedule struct {
	Study      bool    `json:"study"`
	Gym        bool    `json:"gym"`
	Completed  bool    `json:"completed"`
	StudyHours float64 `json:"studyHours"`
	GymHours   float64 `json:"gymHours"`
}

type MonthlyGoal struct {
	WeightTarget   float64 `json:"weightTarget"`
	ModulesTarget  int     `json:"modulesTarget"`
	StepsTarget    int     `json:"stepsTarget"`
	DistanceTarget float64 `json:"distanceTarget"`
	Achieved       bool    `json:"achieved"`
}

type FastingWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UserData is the whole persisted state. JSON names follow the storage
// format used by earlier exports so those files still import.
type UserData struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Height float64 `json:"height"`

	CurrentWeight float64       `json:"currentWeight"`
	TargetWeight  float64       `json:"targetWeight"`
	StartWeight   float64       `json:"startWeight"`
	WeightHistory []WeightEntry `json:"weightHistory"`

	ModulesCompleted int            `json:"modulesCompleted"`
	TotalModules     int            `json:"totalModules"`
	CurrentPhase     int            `json:"currentPhase"`
	TotalStudyHours  float64        `json:"totalStudyHours"`
	StudyHistory     []StudySession `json:"studyHistory"`
	StudyStreak      int            `json:"studyStreak"`

	WeeklyWorkouts    int              `json:"weeklyWorkouts"`
	TargetWorkouts    int              `json:"targetWorkouts"`
	TotalWorkoutHours float64          `json:"totalWorkoutHours"`
	WorkoutHistory    []WorkoutSession `json:"workoutHistory"`
	GymStreak         int              `json:"gymStreak"`

	DailySteps          int            `json:"dailySteps"`
	TargetSteps         int            `json:"targetSteps"`
	DailyDistance       float64        `json:"dailyDistance"`
	TargetDistance      float64        `json:"targetDistance"`
	TotalWalkingMinutes int            `json:"totalWalkingMinutes"`
	WalkingHistory      []WalkingEntry `json:"walkingHistory"`
	WalkingStreak       int            `json:"walkingStreak"`

	CravingHistory        []CravingEntry `json:"cravingHistory"`
	CravingStreak         int            `json:"cravingStreak"`
	TotalCravingsResisted int            `json:"totalCravingsResisted"`

	CaloriesConsumed int     `json:"caloriesConsumed"`
	TargetCalories   int     `json:"targetCalories"`
	WaterIntake      float64 `json:"waterIntake"`
	SleepHours       float64 `json:"sleepHours"`

	WeeklySchedule map[string]DaySchedule `json:"weeklySchedule"`
	MonthlyGoals   map[string]MonthlyGoal `json:"monthlyGoals"`
	FastingWindow  FastingWindow          `json:"fastingWindow"`

	StartDate   string `json:"startDate"`
	LastUpdated string `json:"lastUpdated"`
}

// ScheduleDays lists the weekly schedule days in plan order.
var ScheduleDays = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

type WorkoutType string

const (
	WorkoutUpper    WorkoutType = "upper"
	WorkoutLower    WorkoutType = "lower"
	WorkoutFull     WorkoutType = "full"
	WorkoutHIIT     WorkoutType = "hiit"
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutRecovery WorkoutType = "recovery"
)

var WorkoutTypes = []WorkoutType{WorkoutUpper, WorkoutLower, WorkoutFull, WorkoutHIIT, WorkoutCardio, WorkoutRecovery}

func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutUpper, WorkoutLower, WorkoutFull, WorkoutHIIT, WorkoutCardio, WorkoutRecovery:
		return true
	}
	return false
}

func (t WorkoutType) Label() string {
	switch t {
	case WorkoutUpper:
		return "Upper Body"
	case WorkoutLower:
		return "Lower Body"
	case WorkoutFull:
		return "Full Body"
	case WorkoutHIIT:
		return "HIIT"
	case WorkoutCardio:
		return "Cardio"
	case WorkoutRecovery:
		return "Recovery"
	}
	return string(t)
}

func ParseWorkoutType(s string) (WorkoutType, error) {
	t := WorkoutType(normalizeEnum(s))
	if !t.Valid() {
		return "", fmt.Errorf("invalid workout type %q (use %s)", s, joinValues(WorkoutTypes))
	}
	return t, nil
}

type CravingTrigger string

const (
	TriggerStress  CravingTrigger = "stress"
	TriggerBoredom CravingTrigger = "boredom"
	TriggerEmotion CravingTrigger = "emotion"
	TriggerHunger  CravingTrigger = "hunger"
	TriggerHabit   CravingTrigger = "habit"
	TriggerSocial  CravingTrigger = "social"
	TriggerOther   CravingTrigger = "other"
)

var CravingTriggers = []CravingTrigger{TriggerStress, TriggerBoredom, TriggerEmotion, TriggerHunger, TriggerHabit, TriggerSocial, TriggerOther}

func (t CravingTrigger) Valid() bool {
	switch t {
	case TriggerStress, TriggerBoredom, TriggerEmotion, TriggerHunger, TriggerHabit, TriggerSocial, TriggerOther:
		return true
	}
	return false
}

func ParseCravingTrigger(s string) (CravingTrigger, error) {
	t := CravingTrigger(normalizeEnum(s))
	if !t.Valid() {
		return "", fmt.Errorf("invalid trigger %q (use %s)", s, joinValues(CravingTriggers))
	}
	return t, nil
}

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodAnxious  Mood = "anxious"
	MoodBored    Mood = "bored"
	MoodTired    Mood = "tired"
	MoodNeutral  Mood = "neutral"
)

var Moods = []Mood{MoodHappy, MoodSad, MoodStressed, MoodAnxious, MoodBored, MoodTired, MoodNeutral}

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodStressed, MoodAnxious, MoodBored, MoodTired, MoodNeutral:
		return true
	}
	return false
}

func ParseMood(s string) (Mood, error) {
	m := Mood(normalizeEnum(s))
	if !m.Valid() {
		return "", fmt.Errorf("invalid mood %q (use %s)", s, joinValues(Moods))
	}
	return m, nil
}

type CravingAction string

const (
	ActionResisted    CravingAction = "resisted"
	ActionGaveIn      CravingAction = "gave_in"
	ActionSubstituted CravingAction = "substituted"
	ActionDelayed     CravingAction = "delayed"
)

var CravingActions = []CravingAction{ActionResisted, ActionGaveIn, ActionSubstituted, ActionDelayed}

func (a CravingAction) Valid() bool {
	switch a {
	case ActionResisted, ActionGaveIn, ActionSubstituted, ActionDelayed:
		return true
	}
	return false
}

// Resisted reports whether the action counts toward the resistance streak.
func (a CravingAction) Resisted() bool {
	switch a {
	case ActionResisted, ActionSubstituted:
		return true
	case ActionGaveIn, ActionDelayed:
		return false
	}
	return false
}

func ParseCravingAction(s string) (CravingAction, error) {
	a := CravingAction(normalizeEnum(s))
	if !a.Valid() {
		return "", fmt.Errorf("invalid action %q (use %s)", s, joinValues(CravingActions))
	}
	return a, nil
}
