package cmd

import (
	"fmt"
	"time"

	"calring/internal/cli"
	"calring/internal/energy"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Per-day totals table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	cfg, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	windowDays := cfg.General.DefaultDays
	now := time.Now()
	since := now.AddDate(0, 0, -(windowDays - 1))
	days := energy.Days(state.Entries, since, now)

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY  Last %dd", windowDays)))
		fmt.Println()
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		net := energy.Net(d, state.Energy.TDEE)
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatKcal(d.CaloriesIn),
			cli.FormatKcal(d.CaloriesOut),
			fmt.Sprintf("%d/%d", d.Meals, d.Workouts),
			cli.FormatSignedKcal(net.Net),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "In", "Out", "Meals/Workouts", "Net"},
		Rows:    rows,
	}))

	return nil
}
