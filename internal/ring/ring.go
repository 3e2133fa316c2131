// Package ring maps a day's energy accounting onto a circular progress
// indicator: a clockwise ring that fills as the calorie pool is consumed,
// with a tick mark at the position implied by the daily deficit goal.
//
// Everything here is pure data in, pure data out. Drawing is a separate,
// swappable layer (the TUI ring widget and the serve endpoint both consume
// State).
package ring

import "math"

// Color names the stroke roles the renderer maps to theme colors.
type Color string

const (
	Green  Color = "green"  // on-track fill
	Yellow Color = "yellow" // past the goal marker, still under budget
	Red    Color = "red"    // surplus: the whole ring
	None   Color = "none"   // unset / empty ring
)

// Input is today's state consumed by the mapper.
type Input struct {
	TDEE        float64
	CaloriesIn  float64
	CaloriesOut float64
	DeficitGoal float64 // kcal; 0 means no goal set
}

// Point is a drawing coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one colored arc, angles in degrees of sweep from 12 o'clock.
type Segment struct {
	Color      Color   `json:"color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Marker is the goal tick: its sweep angle plus the radial line endpoints.
type Marker struct {
	Angle     float64 `json:"angle"`
	TickStart Point   `json:"tick_start"`
	TickEnd   Point   `json:"tick_end"`
}

// Label is the center readout. Sign is "+" only for a surplus.
type Label struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Sign    string  `json:"sign"`
	Caption string  `json:"caption"` // "deficit" or "surplus"
}

// Geometry fixes the coordinate frame the tick endpoints are computed in.
type Geometry struct {
	CenterX     float64
	CenterY     float64
	TickInnerR  float64
	TickOuterR  float64
}

// State is the render-ready result. Plain data, no methods with effects.
type State struct {
	Unset    bool      `json:"unset"` // tdee missing: ring renders empty
	Progress float64   `json:"progress"`
	Stroke   Color     `json:"stroke"`
	Center   Label     `json:"center"`
	Segments []Segment `json:"segments"`
	Goal     *Marker   `json:"goal,omitempty"`
}

const fullSweep = 360.0

// Map computes the ring state for the given inputs.
//
// The sweep runs clockwise from 12 o'clock: position 0 is zero calories
// eaten, position 360 is the full calorie pool eaten. A deficit goal of G
// kcal therefore sits at the COMPLEMENT position (1 - G/pool)*360 — the
// point where caloriePool - G calories have been consumed. Mapping G
// through G/pool*360 directly puts the marker on the wrong side of the
// ring: calories of deficit and calories eaten run in opposite directions.
func Map(in Input, geo Geometry) State {
	if in.TDEE <= 0 {
		return State{Unset: true, Stroke: None}
	}

	pool := in.TDEE + in.CaloriesOut
	if pool <= 0 {
		// Pathological with a valid TDEE; render empty, no goal.
		return State{Stroke: None, Center: Label{Unit: "kcal", Caption: "deficit"}}
	}

	progress := clamp01(in.CaloriesIn / pool)
	net := in.CaloriesIn - pool
	currentAngle := progress * fullSweep

	st := State{Progress: progress}

	// Surplus overrides the segment logic: the whole ring goes red and the
	// label flips to an explicit "+N surplus".
	if net > 0 {
		st.Stroke = Red
		st.Segments = []Segment{{Color: Red, StartAngle: 0, EndAngle: fullSweep}}
		st.Center = Label{Value: net, Unit: "kcal", Sign: "+", Caption: "surplus"}
		st.Goal = marker(in.DeficitGoal, pool, geo)
		return st
	}

	// Remaining achievable deficit if eating stopped now.
	displayDeficit := pool - in.CaloriesIn
	if displayDeficit < 0 {
		displayDeficit = 0
	}
	st.Center = Label{Value: displayDeficit, Unit: "kcal", Caption: "deficit"}

	goal := in.DeficitGoal
	st.Goal = marker(goal, pool, geo)

	switch {
	case goal <= 0 || displayDeficit >= goal:
		// No goal, or goal still met: solid green up to the current position.
		st.Stroke = Green
		if currentAngle > 0 {
			st.Segments = []Segment{{Color: Green, StartAngle: 0, EndAngle: currentAngle}}
		}
	default:
		// Eaten past the goal position but not in surplus: green to the
		// goal angle, yellow from there to the current position.
		st.Stroke = Yellow
		ga := GoalAngle(goal, pool)
		st.Segments = []Segment{
			{Color: Green, StartAngle: 0, EndAngle: ga},
			{Color: Yellow, StartAngle: ga, EndAngle: currentAngle},
		}
	}
	return st
}

// GoalAngle returns the sweep angle of a G-kcal deficit goal on a ring with
// the given calorie pool: (1 - G/pool) * 360.
func GoalAngle(goalKcal, pool float64) float64 {
	return (1 - goalKcal/pool) * fullSweep
}

func marker(goalKcal, pool float64, geo Geometry) *Marker {
	if goalKcal <= 0 || goalKcal > pool {
		return nil
	}
	angle := GoalAngle(goalKcal, pool)
	return &Marker{
		Angle:     angle,
		TickStart: TickPoint(angle, geo.CenterX, geo.CenterY, geo.TickInnerR),
		TickEnd:   TickPoint(angle, geo.CenterX, geo.CenterY, geo.TickOuterR),
	}
}

// TickPoint converts a sweep angle to drawing coordinates. The ring's
// visual 12-o'clock start is a -90 degree offset in the underlying frame.
func TickPoint(angleDeg, cx, cy, radius float64) Point {
	rad := (angleDeg - 90) * math.Pi / 180
	return Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
