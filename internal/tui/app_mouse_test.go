package tui

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 4; active++ {
		a := App{activeTab: active}
		pos := 1 // leading space before the first tab

		for i := 0; i < 4; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 3 {
				pos += 2 // separator
			}
		}
	}
}

func TestTabAtXMissesGaps(t *testing.T) {
	a := App{activeTab: 0}
	if got := a.tabAtX(0); got != -1 {
		t.Errorf("leading space should hit no tab, got %d", got)
	}
	if got := a.tabAtX(10_000); got != -1 {
		t.Errorf("far right should hit no tab, got %d", got)
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	names := []string{"Today", "Entries", "Trends", "Settings"}

	w := len(names[tabIdx])
	if tabIdx == activeIdx {
		return w
	}
	if tabIdx == 3 {
		return w + 3 // inactive Settings adds "[x]"
	}
	return w + 2 // brackets around the in-name shortcut letter
}
