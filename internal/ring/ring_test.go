package ring

import (
	"math"
	"testing"
)

var testGeo = Geometry{CenterX: 60, CenterY: 60, TickInnerR: 45, TickOuterR: 54}

func TestMap_GoalComplementAngle(t *testing.T) {
	// tdee=2000, no exercise: pool=2000. A 750 kcal goal means eating
	// 1250 kcal, i.e. 62.5% of the pool: marker at 225 degrees. The naive
	// G/pool*360 mapping would put it at 135, on the wrong side.
	st := Map(Input{TDEE: 2000, DeficitGoal: 750}, testGeo)

	if st.Unset {
		t.Fatal("state unset with valid TDEE")
	}
	if st.Goal == nil {
		t.Fatal("no goal marker")
	}
	if math.Abs(st.Goal.Angle-225) > 1e-9 {
		t.Fatalf("goal angle = %f, want 225", st.Goal.Angle)
	}
}

func TestGoalAngle_StrictlyDecreasesWithGoal(t *testing.T) {
	pool := 2000.0
	prev := GoalAngle(1, pool)
	for g := 100.0; g < pool; g += 100 {
		angle := GoalAngle(g, pool)
		if angle >= prev {
			t.Fatalf("GoalAngle(%f) = %f, not below previous %f", g, angle, prev)
		}
		prev = angle
	}

	if a := GoalAngle(0, pool); a != 360 {
		t.Fatalf("GoalAngle(0) = %f, want 360", a)
	}
	if a := GoalAngle(pool, pool); a != 0 {
		t.Fatalf("GoalAngle(pool) = %f, want 0", a)
	}
}

func TestMap_CurrentPositionMeetsGoalExactly(t *testing.T) {
	// Eating exactly pool-G calories lands the current position on the goal
	// marker. displayDeficit == goal is "goal met": solid green, no yellow.
	st := Map(Input{TDEE: 2000, CaloriesIn: 1250, DeficitGoal: 750}, testGeo)

	if math.Abs(st.Progress-0.625) > 1e-9 {
		t.Fatalf("progress = %f, want 0.625", st.Progress)
	}
	if st.Stroke != Green {
		t.Fatalf("stroke = %q, want green", st.Stroke)
	}
	if len(st.Segments) != 1 || st.Segments[0].Color != Green {
		t.Fatalf("segments = %+v, want single green segment", st.Segments)
	}
	if math.Abs(st.Segments[0].EndAngle-225) > 1e-9 {
		t.Fatalf("fill end angle = %f, want 225 (same as goal angle)", st.Segments[0].EndAngle)
	}
}

func TestMap_PastGoalSplitsGreenYellow(t *testing.T) {
	// 1600 eaten of a 2000 pool leaves a 400 deficit against a 750 goal:
	// green up to the goal angle, yellow from there to the current position.
	st := Map(Input{TDEE: 2000, CaloriesIn: 1600, DeficitGoal: 750}, testGeo)

	if st.Stroke != Yellow {
		t.Fatalf("stroke = %q, want yellow", st.Stroke)
	}
	if len(st.Segments) != 2 {
		t.Fatalf("segments = %+v, want green+yellow", st.Segments)
	}
	if st.Segments[0].Color != Green || st.Segments[1].Color != Yellow {
		t.Fatalf("segment colors = %q,%q", st.Segments[0].Color, st.Segments[1].Color)
	}
	if st.Segments[0].EndAngle != st.Segments[1].StartAngle {
		t.Fatal("yellow segment does not start where green ends")
	}
	wantCurrent := 1600.0 / 2000.0 * 360
	if math.Abs(st.Segments[1].EndAngle-wantCurrent) > 1e-9 {
		t.Fatalf("current angle = %f, want %f", st.Segments[1].EndAngle, wantCurrent)
	}
}

func TestMap_SurplusFillsRedWithPlusLabel(t *testing.T) {
	st := Map(Input{TDEE: 2000, CaloriesIn: 2200}, testGeo)

	if st.Stroke != Red {
		t.Fatalf("stroke = %q, want red", st.Stroke)
	}
	if len(st.Segments) != 1 || st.Segments[0].StartAngle != 0 || st.Segments[0].EndAngle != 360 {
		t.Fatalf("segments = %+v, want full red ring", st.Segments)
	}
	if st.Center.Value != 200 || st.Center.Sign != "+" || st.Center.Caption != "surplus" {
		t.Fatalf("center = %+v, want +200 surplus", st.Center)
	}
	if st.Progress != 1 {
		t.Fatalf("progress = %f, want clamped to 1", st.Progress)
	}
}

func TestMap_ExerciseGrowsThePool(t *testing.T) {
	// 2200 eaten against tdee 2000 is a surplus, unless 300 kcal of
	// exercise grows the pool to 2300.
	st := Map(Input{TDEE: 2000, CaloriesIn: 2200, CaloriesOut: 300}, testGeo)

	if st.Stroke == Red {
		t.Fatal("exercise-burned calories not credited to the pool")
	}
	if st.Center.Caption != "deficit" || st.Center.Value != 100 {
		t.Fatalf("center = %+v, want 100 deficit", st.Center)
	}
}

func TestMap_UnsetWithoutTDEE(t *testing.T) {
	st := Map(Input{TDEE: 0, CaloriesIn: 500, DeficitGoal: 750}, testGeo)

	if !st.Unset {
		t.Fatal("expected unset state with tdee=0")
	}
	if st.Goal != nil || len(st.Segments) != 0 {
		t.Fatalf("unset state must suppress goal and segments, got %+v", st)
	}
}

func TestMap_GoalBeyondPoolSuppressed(t *testing.T) {
	st := Map(Input{TDEE: 2000, CaloriesIn: 100, DeficitGoal: 2500}, testGeo)
	if st.Goal != nil {
		t.Fatalf("goal marker = %+v, want nil for goal larger than the pool", st.Goal)
	}
}

func TestMap_Idempotent(t *testing.T) {
	in := Input{TDEE: 2117.5, CaloriesIn: 1612.25, CaloriesOut: 218.5, DeficitGoal: 600}
	a := Map(in, testGeo)
	b := Map(in, testGeo)

	if a.Progress != b.Progress || a.Stroke != b.Stroke || a.Center != b.Center {
		t.Fatalf("Map not idempotent: %+v vs %+v", a, b)
	}
	if (a.Goal == nil) != (b.Goal == nil) || (a.Goal != nil && *a.Goal != *b.Goal) {
		t.Fatal("Map goal marker not idempotent")
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			t.Fatal("Map segments not idempotent")
		}
	}
}

func TestTickPoint_CoordinateFrame(t *testing.T) {
	// Angle 0 (12 o'clock) is -90 degrees in the drawing frame: straight up.
	top := TickPoint(0, 60, 60, 50)
	if math.Abs(top.X-60) > 1e-9 || math.Abs(top.Y-10) > 1e-9 {
		t.Fatalf("TickPoint(0) = %+v, want (60, 10)", top)
	}

	// Angle 90 is 3 o'clock: straight right.
	right := TickPoint(90, 60, 60, 50)
	if math.Abs(right.X-110) > 1e-9 || math.Abs(right.Y-60) > 1e-9 {
		t.Fatalf("TickPoint(90) = %+v, want (110, 60)", right)
	}
}

func TestMap_MarkerTickSpansRadii(t *testing.T) {
	st := Map(Input{TDEE: 2000, DeficitGoal: 750}, testGeo)
	if st.Goal == nil {
		t.Fatal("no goal marker")
	}

	distStart := math.Hypot(st.Goal.TickStart.X-testGeo.CenterX, st.Goal.TickStart.Y-testGeo.CenterY)
	distEnd := math.Hypot(st.Goal.TickEnd.X-testGeo.CenterX, st.Goal.TickEnd.Y-testGeo.CenterY)

	if math.Abs(distStart-testGeo.TickInnerR) > 1e-9 {
		t.Fatalf("tick start radius = %f, want %f", distStart, testGeo.TickInnerR)
	}
	if math.Abs(distEnd-testGeo.TickOuterR) > 1e-9 {
		t.Fatalf("tick end radius = %f, want %f", distEnd, testGeo.TickOuterR)
	}
}
