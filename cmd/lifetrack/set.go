package lifetrack

import (
	"context"
	"fmt"

	"github.com/saadjs/lifetrack-cli/internal/model"
	"github.com/saadjs/lifetrack-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	setName           string
	setAge            int
	setHeight         float64
	setCurrentWeight  float64
	setTargetWeight   float64
	setStartWeight    float64
	setModules        int
	setTotalModules   int
	setStudyHours     float64
	setWeeklyWorkouts int
	setTargetWorkouts int
	setDailySteps     int
	setTargetSteps    int
	setDailyDistance  float64
	setTargetDistance float64
	setCalories       int
	setTargetCalories int
	setWater          float64
	setWaterUnit      string
	setSleep          float64
	setFastingStart   string
	setFastingEnd     string
	setStartDate      string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Override profile, target, and daily fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var u service.FieldUpdate
		updates := 0
		mark := func(name string) bool {
			if flags.Changed(name) {
				updates++
				return true
			}
			return false
		}

		if mark("name") {
			u.Name = &setName
		}
		if mark("age") {
			u.Age = &setAge
		}
		if mark("height") {
			u.Height = &setHeight
		}
		if mark("current-weight") {
			u.CurrentWeight = &setCurrentWeight
		}
		if mark("target-weight") {
			u.TargetWeight = &setTargetWeight
		}
		if mark("start-weight") {
			u.StartWeight = &setStartWeight
		}
		if mark("modules") {
			u.ModulesCompleted = &setModules
		}
		if mark("total-modules") {
			u.TotalModules = &setTotalModules
		}
		if mark("study-hours") {
			u.TotalStudyHours = &setStudyHours
		}
		if mark("weekly-workouts") {
			u.WeeklyWorkouts = &setWeeklyWorkouts
		}
		if mark("target-workouts") {
			u.TargetWorkouts = &setTargetWorkouts
		}
		if mark("daily-steps") {
			u.DailySteps = &setDailySteps
		}
		if mark("target-steps") {
			u.TargetSteps = &setTargetSteps
		}
		if mark("daily-distance") {
			u.DailyDistance = &setDailyDistance
		}
		if mark("target-distance") {
			u.TargetDistance = &setTargetDistance
		}
		if mark("calories") {
			u.CaloriesConsumed = &setCalories
		}
		if mark("target-calories") {
			u.TargetCalories = &setTargetCalories
		}
		if mark("water") {
			liters, err := service.ToLiters(setWater, setWaterUnit)
			if err != nil {
				return err
			}
			u.WaterIntake = &liters
		}
		if mark("sleep") {
			u.SleepHours = &setSleep
		}
		if mark("start-date") {
			date, err := parseDateArg("start-date", setStartDate)
			if err != nil {
				return err
			}
			if date == "" {
				return fmt.Errorf("--start-date cannot be empty")
			}
			u.StartDate = &date
		}
		fastingStart, fastingEnd := mark("fasting-start"), mark("fasting-end")
		if updates == 0 {
			return fmt.Errorf("set at least one flag")
		}

		return withTracker(cmd, func(ctx context.Context, t *service.Tracker) error {
			if fastingStart || fastingEnd {
				fw := t.State().FastingWindow
				if err := applyFastingFlags(&fw, fastingStart, fastingEnd); err != nil {
					return err
				}
				u.FastingWindow = &fw
			}
			t.UpdateFields(ctx, u)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d field(s)\n", updates)
			return nil
		})
	},
}

func applyFastingFlags(fw *model.FastingWindow, start, end bool) error {
	if start {
		v, err := parseClockArg("fasting-start", setFastingStart)
		if err != nil {
			return err
		}
		fw.Start = v
	}
	if end {
		v, err := parseClockArg("fasting-end", setFastingEnd)
		if err != nil {
			return err
		}
		fw.End = v
	}
	return nil
}

func init() {
	rootCmd.AddCommand(setCmd)
	f := setCmd.Flags()
	f.StringVar(&setName, "name", "", "Display name")
	f.IntVar(&setAge, "age", 0, "Age in years")
	f.Float64Var(&setHeight, "height", 0, "Height in cm")
	f.Float64Var(&setCurrentWeight, "current-weight", 0, "Current weight in kg")
	f.Float64Var(&setTargetWeight, "target-weight", 0, "Target weight in kg")
	f.Float64Var(&setStartWeight, "start-weight", 0, "Starting weight in kg")
	f.IntVar(&setModules, "modules", 0, "Modules completed (never lowers the current value; sets the phase)")
	f.IntVar(&setTotalModules, "total-modules", 0, "Total modules in the curriculum")
	f.Float64Var(&setStudyHours, "study-hours", 0, "Total study hours")
	f.IntVar(&setWeeklyWorkouts, "weekly-workouts", 0, "Workouts this week (0-7)")
	f.IntVar(&setTargetWorkouts, "target-workouts", 0, "Weekly workout target")
	f.IntVar(&setDailySteps, "daily-steps", 0, "Steps today")
	f.IntVar(&setTargetSteps, "target-steps", 0, "Daily step target")
	f.Float64Var(&setDailyDistance, "daily-distance", 0, "Distance today in km")
	f.Float64Var(&setTargetDistance, "target-distance", 0, "Daily distance target in km")
	f.IntVar(&setCalories, "calories", 0, "Calories consumed today")
	f.IntVar(&setTargetCalories, "target-calories", 0, "Daily calorie target")
	f.Float64Var(&setWater, "water", 0, "Water intake today")
	f.StringVar(&setWaterUnit, "water-unit", "l", "Water unit: l|ml|cup|fl-oz")
	f.Float64Var(&setSleep, "sleep", 0, "Hours slept last night")
	f.StringVar(&setFastingStart, "fasting-start", "", "Fasting window start HH:MM")
	f.StringVar(&setFastingEnd, "fasting-end", "", "Fasting window end HH:MM")
	f.StringVar(&setStartDate, "start-date", "", "Plan start date YYYY-MM-DD")
}
