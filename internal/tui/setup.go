package tui

import (
	"errors"
	"strconv"

	"calring/internal/app"
	"calring/internal/config"
	"calring/internal/energy"
	"calring/internal/model"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw first-run form inputs.
type setupValues struct {
	weight   string
	height   string
	age      string
	gender   string
	activity string
}

// newSetupForm builds the first-run profile form, pre-filled from an
// existing profile when one is stored but incomplete.
func newSetupForm(vals *setupValues, existing model.Profile) *huh.Form {
	if existing.WeightLbs > 0 {
		vals.weight = strconv.FormatFloat(existing.WeightLbs, 'f', -1, 64)
	}
	if existing.HeightInches > 0 {
		vals.height = strconv.FormatFloat(existing.HeightInches, 'f', -1, 64)
	}
	if existing.Age > 0 {
		vals.age = strconv.Itoa(existing.Age)
	}
	vals.gender = string(existing.Gender)
	if vals.gender == "" {
		vals.gender = string(model.Male)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("calring setup").
				Description("A profile is needed to compute your daily calorie budget."),
			huh.NewInput().
				Title("Weight (lbs)").
				Value(&vals.weight).
				Validate(requirePositiveNumber),
			huh.NewInput().
				Title("Height (inches)").
				Value(&vals.height).
				Validate(requirePositiveNumber),
			huh.NewInput().
				Title("Age").
				Value(&vals.age).
				Validate(requirePositiveInt),
			huh.NewSelect[string]().
				Title("Gender (for the BMR formula)").
				Options(
					huh.NewOption("Male", string(model.Male)),
					huh.NewOption("Female", string(model.Female)),
				).
				Value(&vals.gender),
			huh.NewSelect[string]().
				Title("Activity level").
				Options(
					huh.NewOption("Sedentary (desk job, little exercise)", "sedentary"),
					huh.NewOption("Light (1-3 workouts/week)", "light"),
					huh.NewOption("Moderate (3-5 workouts/week)", "moderate"),
					huh.NewOption("Active (6-7 workouts/week)", "active"),
					huh.NewOption("Very active (physical job + training)", "very_active"),
				).
				Value(&vals.activity),
		),
	)
}

// saveSetupProfile persists the completed form and writes the config file
// so setup doesn't re-trigger on the next launch.
func (a App) saveSetupProfile() error {
	weight, _ := strconv.ParseFloat(a.setupVals.weight, 64)
	height, _ := strconv.ParseFloat(a.setupVals.height, 64)
	age, _ := strconv.Atoi(a.setupVals.age)

	profile := model.Profile{
		WeightLbs:          weight,
		HeightInches:       height,
		Age:                age,
		Gender:             model.Gender(a.setupVals.gender),
		ActivityMultiplier: energy.ActivityMultipliers[a.setupVals.activity],
	}

	db, err := app.Open(a.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.SaveProfile(a.cfg.General.User, profile); err != nil {
		return err
	}
	return config.Save(a.cfg)
}

func requirePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func requirePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}
