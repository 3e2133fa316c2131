package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"calring/internal/app"
	"calring/internal/cli"
	"calring/internal/config"
	"calring/internal/energy"
	"calring/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	existing, _ := db.Profile(cfg.General.User)

	var (
		weightStr = trimZero(existing.WeightLbs)
		heightStr = trimZero(existing.HeightInches)
		ageStr    string
		gender    = string(existing.Gender)
		activity  string
		apiKey    string
		theme     = cfg.Appearance.Theme
	)
	if existing.Age > 0 {
		ageStr = strconv.Itoa(existing.Age)
	}
	if gender == "" {
		gender = string(model.Male)
	}
	if theme == "" {
		theme = "flexoki-dark"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (lbs)").
				Value(&weightStr).
				Validate(positiveNumber),
			huh.NewInput().
				Title("Height (inches)").
				Value(&heightStr).
				Validate(positiveNumber),
			huh.NewInput().
				Title("Age").
				Value(&ageStr).
				Validate(positiveInt),
			huh.NewSelect[string]().
				Title("Gender (for the BMR formula)").
				Options(
					huh.NewOption("Male", string(model.Male)),
					huh.NewOption("Female", string(model.Female)),
				).
				Value(&gender),
			huh.NewSelect[string]().
				Title("Activity level").
				Options(
					huh.NewOption("Sedentary (desk job, little exercise)", "sedentary"),
					huh.NewOption("Light (1-3 workouts/week)", "light"),
					huh.NewOption("Moderate (3-5 workouts/week)", "moderate"),
					huh.NewOption("Active (6-7 workouts/week)", "active"),
					huh.NewOption("Very active (physical job + training)", "very_active"),
				).
				Value(&activity),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Estimation API key (optional)").
				Description("For estimating calories from free-text descriptions. Leave blank to always log with --cals.").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	weight, _ := strconv.ParseFloat(weightStr, 64)
	height, _ := strconv.ParseFloat(heightStr, 64)
	age, _ := strconv.Atoi(ageStr)

	profile := model.Profile{
		WeightLbs:          weight,
		HeightInches:       height,
		Age:                age,
		Gender:             model.Gender(gender),
		ActivityMultiplier: energy.ActivityMultipliers[activity],
	}
	if err := db.SaveProfile(cfg.General.User, profile); err != nil {
		return err
	}

	if apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	cfg.Appearance.Theme = theme
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	derived, err := energy.Derive(profile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  BMR:  %s kcal/day\n", cli.FormatKcal(derived.BMR))
	fmt.Printf("  TDEE: %s kcal/day\n", cli.FormatKcal(derived.TDEE))
	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Log your first meal: calring log \"two eggs and toast\"")
	fmt.Println()

	return nil
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func positiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

func trimZero(f float64) string {
	if f <= 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
