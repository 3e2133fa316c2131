package energy

import (
	"testing"
	"time"

	"calring/internal/model"
)

func entryAt(t *testing.T, day string, typ model.EntryType, cals float64) model.LogEntry {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", day, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", day, err)
	}
	return model.LogEntry{Type: typ, Cals: cals, LoggedAt: ts}
}

func TestDayTotals_SplitsMealsAndExercise(t *testing.T) {
	entries := []model.LogEntry{
		entryAt(t, "2026-03-10 08:00", model.Meal, 450),
		entryAt(t, "2026-03-10 12:30", model.Meal, 700),
		entryAt(t, "2026-03-10 18:00", model.Exercise, 320),
		entryAt(t, "2026-03-09 19:00", model.Meal, 999), // previous day, excluded
	}

	day, _ := time.ParseInLocation("2006-01-02", "2026-03-10", time.Local)
	totals := DayTotals(entries, day)

	if totals.CaloriesIn != 1150 {
		t.Fatalf("CaloriesIn = %f, want 1150", totals.CaloriesIn)
	}
	if totals.CaloriesOut != 320 {
		t.Fatalf("CaloriesOut = %f, want 320", totals.CaloriesOut)
	}
	if totals.Meals != 2 || totals.Workouts != 1 {
		t.Fatalf("Meals/Workouts = %d/%d, want 2/1", totals.Meals, totals.Workouts)
	}
}

func TestDayTotals_SumsMacrosForMealsOnly(t *testing.T) {
	day, _ := time.ParseInLocation("2006-01-02", "2026-03-10", time.Local)

	meal := entryAt(t, "2026-03-10 08:00", model.Meal, 450)
	meal.Protein, meal.Fiber, meal.Sugar, meal.Fat = 30, 5, 8, 12

	burn := entryAt(t, "2026-03-10 18:00", model.Exercise, 320)

	totals := DayTotals([]model.LogEntry{meal, burn}, day)
	want := model.Macros{Protein: 30, Fiber: 5, Sugar: 8, Fat: 12}
	if totals.Macros != want {
		t.Fatalf("Macros = %+v, want %+v", totals.Macros, want)
	}
}

func TestWindowStats_ActiveDaysExcludeEmptyDays(t *testing.T) {
	now, _ := time.ParseInLocation("2006-01-02 15:04", "2026-03-12 20:00", time.Local)

	// Entries across three calendar days in the window, but one of the
	// three has nothing logged: activeDays must be 2, not 3.
	entries := []model.LogEntry{
		entryAt(t, "2026-03-12 08:00", model.Meal, 1800),
		entryAt(t, "2026-03-10 12:00", model.Meal, 1500),
		entryAt(t, "2026-03-10 18:00", model.Exercise, 400),
	}

	stats := WindowStats(entries, 2000, 7, now)

	if stats.ActiveDays != 2 {
		t.Fatalf("ActiveDays = %d, want 2", stats.ActiveDays)
	}
	wantDeficit := 400 + 2000*2 - (1800 + 1500)
	if stats.TotalDeficit != float64(wantDeficit) {
		t.Fatalf("TotalDeficit = %f, want %d", stats.TotalDeficit, wantDeficit)
	}
	if stats.EstFatLossLbs != stats.TotalDeficit/KcalPerPoundFat {
		t.Fatalf("EstFatLossLbs = %f, want %f", stats.EstFatLossLbs, stats.TotalDeficit/KcalPerPoundFat)
	}
	if stats.AvgCaloriesIn != 3300.0/2 {
		t.Fatalf("AvgCaloriesIn = %f, want %f", stats.AvgCaloriesIn, 3300.0/2)
	}
}

func TestWindowStats_NoEntriesDoesNotDivideByZero(t *testing.T) {
	now := time.Now()
	stats := WindowStats(nil, 2000, 7, now)

	if stats.ActiveDays != 0 {
		t.Fatalf("ActiveDays = %d, want 0", stats.ActiveDays)
	}
	if stats.AvgCaloriesIn != 0 || stats.AvgDailyDeficit != 0 {
		t.Fatalf("averages should be zero with no entries, got in=%f deficit=%f",
			stats.AvgCaloriesIn, stats.AvgDailyDeficit)
	}
}

func TestWindowStats_ExcludesEntriesOutsideWindow(t *testing.T) {
	now, _ := time.ParseInLocation("2006-01-02 15:04", "2026-03-12 20:00", time.Local)

	entries := []model.LogEntry{
		entryAt(t, "2026-03-12 08:00", model.Meal, 1000),
		entryAt(t, "2026-02-01 08:00", model.Meal, 5000), // far outside a 7d window
	}

	stats := WindowStats(entries, 2000, 7, now)
	if stats.CaloriesIn != 1000 {
		t.Fatalf("CaloriesIn = %f, want 1000 (old entry leaked in)", stats.CaloriesIn)
	}
	if stats.ActiveDays != 1 {
		t.Fatalf("ActiveDays = %d, want 1", stats.ActiveDays)
	}
}

func TestDays_FillsEmptyDaysAndSortsRecentFirst(t *testing.T) {
	since, _ := time.ParseInLocation("2006-01-02", "2026-03-08", time.Local)
	until, _ := time.ParseInLocation("2006-01-02 15:04", "2026-03-10 23:00", time.Local)

	entries := []model.LogEntry{
		entryAt(t, "2026-03-08 09:00", model.Meal, 600),
		entryAt(t, "2026-03-10 09:00", model.Meal, 700),
	}

	days := Days(entries, since, until)
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3 (empty day must be zero-filled)", len(days))
	}
	if !days[0].Date.After(days[1].Date) || !days[1].Date.After(days[2].Date) {
		t.Fatal("days not sorted most recent first")
	}
	if days[1].CaloriesIn != 0 || days[1].Meals != 0 {
		t.Fatalf("middle day should be empty, got %+v", days[1])
	}
}
