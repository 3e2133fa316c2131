// Package export writes log entries to CSV for use outside calring.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"calring/internal/model"
)

var header = []string{"date", "time", "type", "name", "cals", "protein", "fiber", "sugar", "fat", "id"}

// WriteCSV writes entries in the order given. Calories are whole kcal;
// macros keep one decimal place.
func WriteCSV(w io.Writer, entries []model.LogEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		local := e.LoggedAt.Local()
		record := []string{
			local.Format("2006-01-02"),
			local.Format("15:04"),
			string(e.Type),
			e.Name,
			strconv.FormatInt(int64(math.Round(e.Cals)), 10),
			formatGrams(e.Protein),
			formatGrams(e.Fiber),
			formatGrams(e.Sugar),
			formatGrams(e.Fat),
			e.ID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatGrams(g float64) string {
	return strconv.FormatFloat(g, 'f', 1, 64)
}
