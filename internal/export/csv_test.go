package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"calring/internal/model"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	logged := time.Date(2026, 3, 10, 12, 30, 0, 0, time.Local)
	entries := []model.LogEntry{
		{
			ID: "abc-123", Type: model.Meal, Name: "chicken, rice",
			LoggedAt: logged, Cals: 650.4, Protein: 38, Fat: 22.5,
		},
		{
			ID: "def-456", Type: model.Exercise, Name: "5k run",
			LoggedAt: logged.Add(6 * time.Hour), Cals: 380,
		},
	}

	var b strings.Builder
	if err := WriteCSV(&b, entries); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}

	if records[0][0] != "date" || records[0][9] != "id" {
		t.Fatalf("header = %v", records[0])
	}

	meal := records[1]
	if meal[0] != "2026-03-10" || meal[1] != "12:30" {
		t.Fatalf("date/time = %q %q", meal[0], meal[1])
	}
	if meal[2] != "meal" || meal[3] != "chicken, rice" {
		t.Fatalf("type/name = %q %q (comma in name must survive quoting)", meal[2], meal[3])
	}
	if meal[4] != "650" {
		t.Fatalf("cals = %q, want whole kcal", meal[4])
	}
	if meal[5] != "38.0" || meal[8] != "22.5" {
		t.Fatalf("macros = %q %q", meal[5], meal[8])
	}

	run := records[2]
	if run[2] != "exercise" || run[4] != "380" || run[5] != "0.0" {
		t.Fatalf("exercise row = %v", run)
	}
}

func TestWriteCSV_EmptyStillWritesHeader(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.HasPrefix(b.String(), "date,time,type,name") {
		t.Fatalf("output = %q", b.String())
	}
}
