package cmd

import (
	"fmt"

	"calring/internal/cli"
	"calring/internal/ring"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's energy budget and progress",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	_, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("TODAY"))
		fmt.Println()
	}

	if state.Energy.TDEE <= 0 {
		fmt.Println("  No profile set. Run `calring setup` to get started.")
		return nil
	}

	net := state.Net()
	rs := ring.Map(state.RingInput(), ring.Geometry{})

	fmt.Printf("  BMR %s  ·  TDEE %s kcal\n\n",
		cli.FormatKcal(state.Energy.BMR), cli.FormatKcal(state.Energy.TDEE))

	fmt.Printf("  %s\n\n", cli.RenderBudgetBar(state.Today.CaloriesIn, net.CaloriePool, 30))

	fmt.Printf("  Eaten:   %s kcal (%d meals)\n", cli.FormatKcal(state.Today.CaloriesIn), state.Today.Meals)
	fmt.Printf("  Burned:  %s kcal (%d workouts)\n", cli.FormatKcal(state.Today.CaloriesOut), state.Today.Workouts)

	switch {
	case rs.Center.Caption == "surplus":
		fmt.Printf("  Status:  %s\n", cli.RenderNet(net.Net, fmt.Sprintf("+%s kcal surplus", cli.FormatKcal(rs.Center.Value))))
	default:
		fmt.Printf("  Status:  %s\n", cli.RenderNet(net.Net, fmt.Sprintf("%s kcal deficit remaining", cli.FormatKcal(rs.Center.Value))))
	}

	if state.HasGoal {
		goal := float64(state.Goal.DailyDeficitKcal)
		display := net.CaloriePool - state.Today.CaloriesIn
		if display < 0 {
			display = 0
		}
		switch {
		case net.Net > 0:
			fmt.Printf("  Goal:    %s kcal/day — over budget\n", cli.FormatKcal(goal))
		case display >= goal:
			fmt.Printf("  Goal:    %s kcal/day — on track\n", cli.FormatKcal(goal))
		default:
			fmt.Printf("  Goal:    %s kcal/day — %s kcal past the goal line\n",
				cli.FormatKcal(goal), cli.FormatKcal(goal-display))
		}
	}

	if state.Today.Meals > 0 {
		m := state.Today.Macros
		fmt.Printf("\n  Macros:  %s protein · %s fiber · %s sugar · %s fat\n",
			cli.FormatMacro(m.Protein), cli.FormatMacro(m.Fiber),
			cli.FormatMacro(m.Sugar), cli.FormatMacro(m.Fat))
	}

	fmt.Println()
	return nil
}
