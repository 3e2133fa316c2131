package model

import "errors"

var (
	// ErrInvalidProfile indicates a missing or non-positive weight, height,
	// age, or activity multiplier. Blocks BMR/TDEE computation.
	ErrInvalidProfile = errors.New("model: profile incomplete (weight, height, age, and activity level are required)")

	// ErrInvalidGoal indicates a goal whose target weight is not below the
	// current weight, or whose daily deficit is not positive.
	ErrInvalidGoal = errors.New("model: goal must target a weight below the current weight with a positive daily deficit")
)
