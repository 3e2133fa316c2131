package energy

import (
	"sort"
	"time"

	"calring/internal/model"
)

const dayFormat = "2006-01-02"

// DayTotals sums a single local calendar day's entries.
func DayTotals(entries []model.LogEntry, day time.Time) model.DayTotals {
	key := day.Local().Format(dayFormat)
	totals := model.DayTotals{Date: dayStart(day)}

	for _, e := range entries {
		if e.LoggedAt.Local().Format(dayFormat) != key {
			continue
		}
		switch e.Type {
		case model.Exercise:
			totals.CaloriesOut += e.Cals
			totals.Workouts++
		default:
			totals.CaloriesIn += e.Cals
			totals.Meals++
			totals.Macros.Protein += e.Protein
			totals.Macros.Fiber += e.Fiber
			totals.Macros.Sugar += e.Sugar
			totals.Macros.Fat += e.Fat
		}
	}
	return totals
}

// Today is shorthand for DayTotals over the current local day.
func Today(entries []model.LogEntry, now time.Time) model.DayTotals {
	return DayTotals(entries, now)
}

// Days groups entries into per-day totals over [since, until], one element
// per calendar day including empty days, most recent first. Empty days are
// kept so charts show gaps as zeros.
func Days(entries []model.LogEntry, since, until time.Time) []model.DayTotals {
	dayMap := make(map[string]*model.DayTotals)

	for _, e := range entries {
		local := e.LoggedAt.Local()
		if local.Before(since) || local.After(until) {
			continue
		}
		key := local.Format(dayFormat)
		dt, ok := dayMap[key]
		if !ok {
			dt = &model.DayTotals{Date: dayStart(local)}
			dayMap[key] = dt
		}
		switch e.Type {
		case model.Exercise:
			dt.CaloriesOut += e.Cals
			dt.Workouts++
		default:
			dt.CaloriesIn += e.Cals
			dt.Meals++
			dt.Macros.Protein += e.Protein
			dt.Macros.Fiber += e.Fiber
			dt.Macros.Sugar += e.Sugar
			dt.Macros.Fat += e.Fat
		}
	}

	day := dayStart(since)
	end := dayStart(until)
	for !day.After(end) {
		key := day.Format(dayFormat)
		if _, ok := dayMap[key]; !ok {
			dayMap[key] = &model.DayTotals{Date: day}
		}
		day = day.AddDate(0, 0, 1)
	}

	days := make([]model.DayTotals, 0, len(dayMap))
	for _, dt := range dayMap {
		days = append(days, *dt)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}

// WindowStats aggregates the trailing windowDays ending at now.
//
// Only days with at least one logged entry count as active; the averages
// divide by active days so forgotten days don't drag them down (the
// trade-off being that a true zero-intake day is not counted as a deficit
// day). The total deficit credits one TDEE per active day:
//
//	totalDeficit = caloriesOutSum + tdee*activeDays - caloriesInSum
func WindowStats(entries []model.LogEntry, tdee float64, windowDays int, now time.Time) model.WindowStats {
	since := dayStart(now.AddDate(0, 0, -(windowDays - 1)))

	stats := model.WindowStats{WindowDays: windowDays}
	activeDays := make(map[string]struct{})

	for _, e := range entries {
		local := e.LoggedAt.Local()
		if local.Before(since) || local.After(now) {
			continue
		}
		activeDays[local.Format(dayFormat)] = struct{}{}
		stats.TotalEntries++
		if e.Type == model.Exercise {
			stats.CaloriesOut += e.Cals
		} else {
			stats.CaloriesIn += e.Cals
		}
	}

	stats.ActiveDays = len(activeDays)
	stats.TotalDeficit = stats.CaloriesOut + tdee*float64(stats.ActiveDays) - stats.CaloriesIn
	stats.EstFatLossLbs = stats.TotalDeficit / KcalPerPoundFat

	// Averages never divide by zero: floor the denominator at one day.
	days := float64(stats.ActiveDays)
	if days < 1 {
		days = 1
	}
	stats.AvgCaloriesIn = stats.CaloriesIn / days
	stats.AvgCaloriesOut = stats.CaloriesOut / days
	stats.AvgDailyDeficit = stats.TotalDeficit / days
	stats.EntriesPerDay = float64(stats.TotalEntries) / days

	return stats
}

func dayStart(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
