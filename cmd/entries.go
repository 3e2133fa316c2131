package cmd

import (
	"fmt"
	"time"

	"calring/internal/cli"
	"calring/internal/model"

	"github.com/spf13/cobra"
)

var flagEntriesLimit int

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List logged entries, newest first",
	RunE:  runEntries,
}

func init() {
	entriesCmd.Flags().IntVarP(&flagEntriesLimit, "limit", "l", 20, "Max entries to show (0 for all)")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
	_, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	entries := state.Entries
	if flagEntriesLimit > 0 && len(entries) > flagEntriesLimit {
		entries = entries[:flagEntriesLimit]
	}

	if len(entries) == 0 {
		fmt.Println("  Nothing logged yet. Try `calring log \"two eggs and toast\"`.")
		return nil
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("ENTRIES"))
		fmt.Println()
	}

	now := time.Now()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := "meal"
		if e.Type == model.Exercise {
			kind = "exercise"
		}
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.FormatEntryTime(e.LoggedAt, now),
			kind,
			e.Name,
			cli.FormatKcal(e.Cals),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "When", "Type", "Name", "Kcal"},
		Rows:    rows,
	}))

	return nil
}
