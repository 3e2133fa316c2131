package components

import (
	"strings"
	"testing"

	"calring/internal/ring"
	"calring/internal/tui/theme"
)

func TestRenderRingGridHeight(t *testing.T) {
	theme.SetActive("flexoki-dark")

	st := ring.Map(ring.Input{TDEE: 2000, CaloriesIn: 1200, DeficitGoal: 500},
		ring.Geometry{CenterX: 60, CenterY: 60, TickInnerR: 45, TickOuterR: 54})

	out := RenderRing(st, 15)
	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Fatalf("ring grid height = %d, want 15", len(lines))
	}
}

func TestRenderRingClampsTinySizes(t *testing.T) {
	theme.SetActive("flexoki-dark")

	st := ring.Map(ring.Input{TDEE: 2000, CaloriesIn: 500},
		ring.Geometry{})

	out := RenderRing(st, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("tiny ring should clamp to 9 rows, got %d", len(lines))
	}
}

func TestRingCenterText(t *testing.T) {
	tests := []struct {
		name        string
		st          ring.State
		value, capt string
	}{
		{
			name:  "unset",
			st:    ring.State{Unset: true},
			value: "--",
			capt:  "no profile",
		},
		{
			name: "deficit",
			st: ring.State{
				Center: ring.Label{Value: 850, Unit: "kcal", Caption: "deficit"},
			},
			value: "850",
			capt:  "kcal deficit",
		},
		{
			name: "surplus carries the plus sign",
			st: ring.State{
				Center: ring.Label{Value: 200, Unit: "kcal", Sign: "+", Caption: "surplus"},
			},
			value: "+200",
			capt:  "kcal surplus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, capt := ringCenterText(tt.st)
			if value != tt.value || capt != tt.capt {
				t.Errorf("ringCenterText() = (%q, %q), want (%q, %q)", value, capt, tt.value, tt.capt)
			}
		})
	}
}

func TestStrokeColorMapsRoles(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active

	if got := StrokeColor(ring.Green); got != th.Green {
		t.Errorf("green stroke = %q, want %q", got, th.Green)
	}
	if got := StrokeColor(ring.Red); got != th.Red {
		t.Errorf("red stroke = %q, want %q", got, th.Red)
	}
	if got := StrokeColor(ring.None); got != th.TextDim {
		t.Errorf("none stroke = %q, want %q", got, th.TextDim)
	}
}
