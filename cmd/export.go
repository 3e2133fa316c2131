package cmd

import (
	"fmt"
	"os"

	"calring/internal/export"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	_, db, state, err := openData()
	if err != nil {
		return err
	}
	defer db.Close()

	w := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteCSV(w, state.Entries); err != nil {
		return err
	}

	if flagExportOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d entries to %s\n", len(state.Entries), flagExportOut)
	}
	return nil
}
