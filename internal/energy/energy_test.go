package energy

import (
	"errors"
	"math"
	"testing"

	"calring/internal/model"
)

func validProfile() model.Profile {
	return model.Profile{
		WeightLbs:          180,
		HeightInches:       70,
		Age:                35,
		Gender:             model.Male,
		ActivityMultiplier: 1.55,
	}
}

func TestBMR_MifflinStJeor(t *testing.T) {
	p := validProfile()

	got, err := BMR(p)
	if err != nil {
		t.Fatalf("BMR: %v", err)
	}

	kg := 180 * LbsToKg
	cm := 70 * InchesToCm
	want := 10*kg + 6.25*cm - 5*35 + MaleOffset
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("BMR = %f, want %f", got, want)
	}

	p.Gender = model.Female
	female, err := BMR(p)
	if err != nil {
		t.Fatalf("BMR female: %v", err)
	}
	if diff := got - female; math.Abs(diff-(MaleOffset-FemaleOffset)) > 1e-9 {
		t.Fatalf("male-female BMR diff = %f, want %f", diff, MaleOffset-FemaleOffset)
	}
}

func TestBMR_RejectsIncompleteProfile(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Profile)
	}{
		{"zero weight", func(p *model.Profile) { p.WeightLbs = 0 }},
		{"negative weight", func(p *model.Profile) { p.WeightLbs = -150 }},
		{"zero height", func(p *model.Profile) { p.HeightInches = 0 }},
		{"zero age", func(p *model.Profile) { p.Age = 0 }},
		{"negative age", func(p *model.Profile) { p.Age = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)
			if _, err := BMR(p); !errors.Is(err, model.ErrInvalidProfile) {
				t.Fatalf("BMR err = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestTDEE_MonotonicInActivityMultiplier(t *testing.T) {
	bmr, err := BMR(validProfile())
	if err != nil {
		t.Fatalf("BMR: %v", err)
	}

	prev := 0.0
	for _, mult := range []float64{1.2, 1.375, 1.55, 1.725, 1.9} {
		tdee, err := TDEE(bmr, mult)
		if err != nil {
			t.Fatalf("TDEE(%f): %v", mult, err)
		}
		if tdee <= prev {
			t.Fatalf("TDEE(%f) = %f not greater than TDEE at lower multiplier (%f)", mult, tdee, prev)
		}
		prev = tdee
	}
}

func TestTDEE_RejectsNonPositiveMultiplier(t *testing.T) {
	if _, err := TDEE(1700, 0); !errors.Is(err, model.ErrInvalidProfile) {
		t.Fatalf("TDEE(_, 0) err = %v, want ErrInvalidProfile", err)
	}
	if _, err := TDEE(1700, -1.2); !errors.Is(err, model.ErrInvalidProfile) {
		t.Fatalf("TDEE(_, -1.2) err = %v, want ErrInvalidProfile", err)
	}
}

func TestNet_AlgebraicIdentity(t *testing.T) {
	// net must equal caloriesIn - tdee - caloriesOut exactly, no approximation.
	cases := []struct {
		in, out, tdee float64
	}{
		{0, 0, 2000},
		{1500, 300, 2000},
		{2500, 0, 2000},
		{1234.5, 678.9, 1876.5},
	}

	for _, tc := range cases {
		day := model.DayTotals{CaloriesIn: tc.in, CaloriesOut: tc.out}
		n := Net(day, tc.tdee)

		if n.Net != tc.in-tc.tdee-tc.out {
			t.Fatalf("Net(%+v, %f).Net = %f, want %f", day, tc.tdee, n.Net, tc.in-tc.tdee-tc.out)
		}
		if n.CaloriePool != tc.tdee+tc.out {
			t.Fatalf("CaloriePool = %f, want %f", n.CaloriePool, tc.tdee+tc.out)
		}
		if n.CaloriePool < tc.tdee {
			t.Fatalf("CaloriePool %f below TDEE %f", n.CaloriePool, tc.tdee)
		}
		if n.FatChange != n.Net/KcalPerPoundFat {
			t.Fatalf("FatChange = %f, want %f", n.FatChange, n.Net/KcalPerPoundFat)
		}
	}
}

func TestNet_Idempotent(t *testing.T) {
	day := model.DayTotals{CaloriesIn: 1812.25, CaloriesOut: 417.75}
	first := Net(day, 2133.125)
	second := Net(day, 2133.125)
	if first != second {
		t.Fatalf("Net not idempotent: %+v vs %+v", first, second)
	}
}
