// Package model defines domain types for calring profiles, goals, and log entries.
package model

import "time"

// Gender selects the Mifflin-St Jeor constant used for BMR.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Profile holds the body metrics that drive BMR/TDEE computation.
// Persisted per user; mutated only by an explicit profile save.
type Profile struct {
	WeightLbs          float64
	HeightInches       float64
	Age                int
	Gender             Gender
	ActivityMultiplier float64
}

// Valid reports whether every field required for BMR/TDEE is usable.
func (p Profile) Valid() bool {
	return p.WeightLbs > 0 && p.HeightInches > 0 && p.Age > 0 &&
		p.ActivityMultiplier > 0 &&
		(p.Gender == Male || p.Gender == Female)
}

// DerivedEnergy caches the computed BMR/TDEE pair for display.
// Never a source of truth — recomputed whenever the profile changes.
type DerivedEnergy struct {
	BMR  float64
	TDEE float64
}

// EntryType distinguishes meals (calories in) from exercise (calories out).
type EntryType string

const (
	Meal     EntryType = "meal"
	Exercise EntryType = "exercise"
)

// LogEntry is one logged meal or workout. Immutable once written;
// removed only by explicit delete.
type LogEntry struct {
	ID       string
	UserID   string
	Type     EntryType
	Name     string
	LoggedAt time.Time

	Cals    float64
	Protein float64
	Fiber   float64
	Sugar   float64
	Fat     float64
}

// Macros holds summed macro grams for a day.
type Macros struct {
	Protein float64
	Fiber   float64
	Sugar   float64
	Fat     float64
}

// DayTotals is the derived per-day aggregate. Recomputed from the full
// entry set on every load; never persisted.
type DayTotals struct {
	Date        time.Time
	CaloriesIn  float64
	CaloriesOut float64
	Meals       int
	Workouts    int
	Macros      Macros
}

// Goal is the optional weight-loss target: a target weight and the daily
// calorie deficit intended to reach it. Overwritten wholesale on save.
type Goal struct {
	TargetWeightLbs  float64
	DailyDeficitKcal int
}

// Validate checks the goal against the user's current weight. A goal must
// describe intended loss: target strictly below current weight, deficit
// strictly positive.
func (g Goal) Validate(currentWeightLbs float64) error {
	if g.DailyDeficitKcal <= 0 {
		return ErrInvalidGoal
	}
	if g.TargetWeightLbs <= 0 || g.TargetWeightLbs >= currentWeightLbs {
		return ErrInvalidGoal
	}
	return nil
}

// WindowStats holds trailing-window aggregates. Days with no entries are
// excluded from averages (ActiveDays is the denominator).
type WindowStats struct {
	WindowDays  int
	ActiveDays  int
	CaloriesIn  float64
	CaloriesOut float64

	TotalDeficit    float64
	EstFatLossLbs   float64
	AvgCaloriesIn   float64
	AvgCaloriesOut  float64
	AvgDailyDeficit float64
	EntriesPerDay   float64
	TotalEntries    int
}
