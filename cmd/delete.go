package cmd

import (
	"fmt"
	"strings"

	"calring/internal/cli"
	"calring/internal/model"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete entries by ID",
	Long:  "Delete entries by ID. Short ID prefixes from `calring entries` are accepted when unambiguous.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	cfg, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	// Resolve short prefixes against the loaded entry set before touching
	// the database.
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		resolved, err := resolveEntryID(state.Entries, arg)
		if err != nil {
			return err
		}
		ids = append(ids, resolved)
	}

	deleted, err := db.DeleteEntries(cfg.General.User, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if deleted[id] {
			fmt.Printf("  Deleted %s\n", cli.ShortID(id))
		} else {
			fmt.Printf("  Not found: %s\n", cli.ShortID(id))
		}
	}
	return nil
}

func resolveEntryID(entries []model.LogEntry, arg string) (string, error) {
	var match string
	for _, e := range entries {
		if e.ID == arg {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, arg) {
			if match != "" && match != e.ID {
				return "", fmt.Errorf("ambiguous ID prefix %q", arg)
			}
			match = e.ID
		}
	}
	if match != "" {
		return match, nil
	}
	// Unknown ID: pass through so the store reports it as not found.
	return arg, nil
}
