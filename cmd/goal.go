package cmd

import (
	"errors"
	"fmt"

	"calring/internal/cli"
	"calring/internal/energy"
	"calring/internal/model"
	"calring/internal/ring"

	"github.com/spf13/cobra"
)

var (
	flagGoalTarget  float64
	flagGoalDeficit int
	flagGoalClear   bool
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show, set, or clear the weight-loss goal",
	Long: `Show the current goal, or set one with --target and --deficit.
The target must be below your current weight and the daily deficit positive.

  calring goal --target 165 --deficit 750
  calring goal --clear`,
	RunE: runGoal,
}

func init() {
	goalCmd.Flags().Float64Var(&flagGoalTarget, "target", 0, "Target weight in pounds")
	goalCmd.Flags().IntVar(&flagGoalDeficit, "deficit", 0, "Daily calorie deficit goal")
	goalCmd.Flags().BoolVar(&flagGoalClear, "clear", false, "Remove the goal")
	rootCmd.AddCommand(goalCmd)
}

func runGoal(_ *cobra.Command, _ []string) error {
	cfg, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagGoalClear {
		if err := db.ClearGoal(cfg.General.User); err != nil {
			return err
		}
		fmt.Println("  Goal cleared.")
		return nil
	}

	if flagGoalTarget > 0 || flagGoalDeficit > 0 {
		if !state.Profile.Valid() {
			return errors.New("set up a profile before setting a goal")
		}
		g := model.Goal{
			TargetWeightLbs:  flagGoalTarget,
			DailyDeficitKcal: flagGoalDeficit,
		}
		if err := g.Validate(state.Profile.WeightLbs); err != nil {
			return fmt.Errorf("%w: target must be below current weight (%s) and deficit positive",
				err, cli.FormatLbs(state.Profile.WeightLbs))
		}
		if err := db.SaveGoal(cfg.General.User, g); err != nil {
			return err
		}
		state.Goal = g
		state.HasGoal = true
		fmt.Println("  Goal saved.")
	}

	if !state.HasGoal {
		fmt.Println("  No goal set. Try `calring goal --target 165 --deficit 750`.")
		return nil
	}

	g := state.Goal
	toLose := state.Profile.WeightLbs - g.TargetWeightLbs

	fmt.Println()
	fmt.Printf("  Target weight:  %s (%s to lose)\n", cli.FormatLbs(g.TargetWeightLbs), cli.FormatLbs(toLose))
	fmt.Printf("  Daily deficit:  %s kcal\n", cli.FormatKcal(float64(g.DailyDeficitKcal)))

	if g.DailyDeficitKcal > 0 {
		daysToGoal := toLose * energy.KcalPerPoundFat / float64(g.DailyDeficitKcal)
		fmt.Printf("  At this pace:   ~%.0f days\n", daysToGoal)
	}

	if state.Energy.TDEE > 0 {
		pool := state.Energy.TDEE + state.Today.CaloriesOut
		goal := float64(g.DailyDeficitKcal)
		if goal <= pool {
			fmt.Printf("  Eat under:      %s kcal today (marker at %.0f°)\n",
				cli.FormatKcal(pool-goal), ring.GoalAngle(goal, pool))
		}
	}

	fmt.Println()
	return nil
}
