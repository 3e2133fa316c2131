// Package energy computes the daily energy budget: BMR, TDEE, and the
// deficit/surplus accounting derived from logged entries.
package energy

import (
	"calring/internal/model"
)

// Unit conversions and physiological constants. The gender offsets belong to
// the Mifflin-St Jeor equation; KcalPerPoundFat is the usual coarse
// approximation for adipose tissue, not a metabolically exact figure.
const (
	LbsToKg    = 0.453592
	InchesToCm = 2.54

	MaleOffset   = 5.0
	FemaleOffset = -161.0

	KcalPerPoundFat = 3500.0
)

// ActivityMultipliers maps activity level names to their TDEE multiplier.
// The single source of truth for valid levels; also used by setup and the
// settings tab for input validation.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMR computes basal metabolic rate (kcal/day) via Mifflin-St Jeor.
// No rounding — callers round at the presentation boundary.
func BMR(p model.Profile) (float64, error) {
	if p.WeightLbs <= 0 || p.HeightInches <= 0 || p.Age <= 0 {
		return 0, model.ErrInvalidProfile
	}

	kg := p.WeightLbs * LbsToKg
	cm := p.HeightInches * InchesToCm

	bmr := 10*kg + 6.25*cm - 5*float64(p.Age)
	if p.Gender == model.Male {
		bmr += MaleOffset
	} else {
		bmr += FemaleOffset
	}
	return bmr, nil
}

// TDEE scales BMR by the activity multiplier.
func TDEE(bmr, activityMultiplier float64) (float64, error) {
	if activityMultiplier <= 0 {
		return 0, model.ErrInvalidProfile
	}
	return bmr * activityMultiplier, nil
}

// Derive computes both BMR and TDEE from a profile.
func Derive(p model.Profile) (model.DerivedEnergy, error) {
	bmr, err := BMR(p)
	if err != nil {
		return model.DerivedEnergy{}, err
	}
	tdee, err := TDEE(bmr, p.ActivityMultiplier)
	if err != nil {
		return model.DerivedEnergy{}, err
	}
	return model.DerivedEnergy{BMR: bmr, TDEE: tdee}, nil
}

// DailyNet is the net energy accounting for a single day.
type DailyNet struct {
	CaloriePool float64 // tdee + calories burned: total intake budget
	Net         float64 // caloriesIn - pool; negative = deficit
	FatChange   float64 // net / 3500, in lbs
}

// Net computes the day's deficit/surplus against the calorie pool.
// Pure: recomputed fresh whenever entries change, no hidden state.
func Net(day model.DayTotals, tdee float64) DailyNet {
	pool := tdee + day.CaloriesOut
	net := day.CaloriesIn - pool
	return DailyNet{
		CaloriePool: pool,
		Net:         net,
		FatChange:   net / KcalPerPoundFat,
	}
}
