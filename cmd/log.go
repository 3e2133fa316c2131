package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calring/internal/cli"
	"calring/internal/config"
	"calring/internal/estimate"
	"calring/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLogCals     float64
	flagLogName     string
	flagLogExercise bool
	flagLogProtein  float64
	flagLogFiber    float64
	flagLogSugar    float64
	flagLogFat      float64
	flagLogAt       string
)

var logCmd = &cobra.Command{
	Use:   "log [description]",
	Short: "Log a meal or workout",
	Long: `Log a meal or workout. With --cals the entry is recorded as given;
without it the description is sent to the estimation API for calories and
macros.

  calring log "two eggs and toast"
  calring log "5k run" --exercise
  calring log --name "protein shake" --cals 220 --protein 30`,
	Args: cobra.ArbitraryArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().Float64Var(&flagLogCals, "cals", 0, "Calories (skips estimation)")
	logCmd.Flags().StringVar(&flagLogName, "name", "", "Entry name (defaults to the description)")
	logCmd.Flags().BoolVarP(&flagLogExercise, "exercise", "x", false, "Log as exercise (calories burned)")
	logCmd.Flags().Float64Var(&flagLogProtein, "protein", 0, "Protein grams")
	logCmd.Flags().Float64Var(&flagLogFiber, "fiber", 0, "Fiber grams")
	logCmd.Flags().Float64Var(&flagLogSugar, "sugar", 0, "Sugar grams")
	logCmd.Flags().Float64Var(&flagLogFat, "fat", 0, "Fat grams")
	logCmd.Flags().StringVar(&flagLogAt, "at", "", "Log time (15:04 or 2006-01-02 15:04)")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" && flagLogName == "" {
		return errors.New("nothing to log: give a description or --name")
	}

	cfg, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	entry := model.LogEntry{
		UserID: cfg.General.User,
		Type:   model.Meal,
		Name:   flagLogName,
	}
	if flagLogExercise {
		entry.Type = model.Exercise
	}
	if entry.Name == "" {
		entry.Name = description
	}

	if flagLogAt != "" {
		at, err := parseLogTime(flagLogAt)
		if err != nil {
			return err
		}
		entry.LoggedAt = at
	}

	if flagLogCals > 0 {
		entry.Cals = flagLogCals
		if entry.Type == model.Meal {
			entry.Protein = flagLogProtein
			entry.Fiber = flagLogFiber
			entry.Sugar = flagLogSugar
			entry.Fat = flagLogFat
		}
	} else {
		if description == "" {
			return errors.New("estimation needs a description; or give --cals")
		}

		client := estimate.NewClient(config.GetAPIKey(cfg), cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		if client == nil {
			return errors.New("no estimation API key configured; set OPENAI_API_KEY or give --cals")
		}

		if !flagQuiet {
			fmt.Println("  Estimating...")
		}
		result, err := client.Estimate(context.Background(), description, state.Profile.WeightLbs)
		if err != nil {
			return err
		}

		// An explicit --exercise flag wins over the model's classification.
		if !flagLogExercise {
			entry.Type = result.Type
		}
		if flagLogName == "" && result.Name != "" {
			entry.Name = result.Name
		}
		entry.Cals = result.Cals
		if entry.Type == model.Meal {
			entry.Protein = result.Protein
			entry.Fiber = result.Fiber
			entry.Sugar = result.Sugar
			entry.Fat = result.Fat
		}

		if !flagQuiet && result.Confidence == "low" {
			fmt.Println("  (low confidence — consider logging with --cals)")
		}
	}

	saved, err := db.AppendEntry(entry)
	if err != nil {
		return err
	}

	verb := "Logged meal"
	if saved.Type == model.Exercise {
		verb = "Logged workout"
	}
	fmt.Printf("  %s: %s — %s kcal  [%s]\n", verb, saved.Name, cli.FormatKcal(saved.Cals), cli.ShortID(saved.ID))

	if saved.Type == model.Meal && (saved.Protein > 0 || saved.Fat > 0) {
		fmt.Printf("  Macros: %s protein · %s fiber · %s sugar · %s fat\n",
			cli.FormatMacro(saved.Protein), cli.FormatMacro(saved.Fiber),
			cli.FormatMacro(saved.Sugar), cli.FormatMacro(saved.Fat))
	}
	return nil
}

// parseLogTime accepts a clock time (applied to today) or a full timestamp.
func parseLogTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	if clock, err := time.ParseInLocation("15:04", s, time.Local); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("unparseable time %q (want 15:04 or 2006-01-02 15:04)", s)
}
