package cmd

import (
	"fmt"
	"time"

	"calring/internal/cli"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Trailing-window deficit and intake stats",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	windowDays := cfg.General.DefaultDays
	stats := state.Window(windowDays, time.Now())

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("STATS  Last %dd", windowDays)))
		fmt.Println()
	}

	if stats.TotalEntries == 0 {
		fmt.Println("  Nothing logged in this window.")
		return nil
	}

	fmt.Printf("  Active days:     %d of %d\n", stats.ActiveDays, stats.WindowDays)
	fmt.Printf("  Entries:         %d (%.1f/day)\n", stats.TotalEntries, stats.EntriesPerDay)
	fmt.Println()
	fmt.Printf("  Calories in:     %s total, %s/day\n",
		cli.FormatKcal(stats.CaloriesIn), cli.FormatKcal(stats.AvgCaloriesIn))
	fmt.Printf("  Calories out:    %s total, %s/day\n",
		cli.FormatKcal(stats.CaloriesOut), cli.FormatKcal(stats.AvgCaloriesOut))
	fmt.Println()
	fmt.Printf("  Total deficit:   %s kcal (%s/day)\n",
		cli.FormatKcal(stats.TotalDeficit), cli.FormatKcal(stats.AvgDailyDeficit))
	fmt.Printf("  Est. fat change: %s\n", cli.FormatLbs(-stats.EstFatLossLbs))

	if state.HasGoal && stats.ActiveDays > 0 {
		goalTotal := float64(state.Goal.DailyDeficitKcal * stats.ActiveDays)
		pct := 0.0
		if goalTotal > 0 {
			pct = stats.TotalDeficit / goalTotal
		}
		fmt.Printf("  Goal progress:   %s of %s kcal (%s)\n",
			cli.FormatKcal(stats.TotalDeficit), cli.FormatKcal(goalTotal), cli.FormatPercent(pct))
	}

	fmt.Println()
	return nil
}
