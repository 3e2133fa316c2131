package components

import (
	"fmt"
	"math"

	"calring/internal/ring"
	"calring/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StrokeColor maps a ring stroke role onto the active theme.
func StrokeColor(c ring.Color) lipgloss.Color {
	t := theme.Active
	switch c {
	case ring.Green:
		return t.Green
	case ring.Yellow:
		return t.Yellow
	case ring.Red:
		return t.Red
	default:
		return t.TextDim
	}
}

type ringCell struct {
	ch    rune
	color lipgloss.Color
}

// RenderRing draws the ring state on a character grid rows tall. Grid
// columns are doubled so the ring reads as a circle despite the 2:1 cell
// aspect ratio of terminal fonts.
func RenderRing(st ring.State, rows int) string {
	if rows < 9 {
		rows = 9
	}
	t := theme.Active

	cols := rows*2 + 1
	radius := float64(rows-1) / 2
	cy := float64(rows-1) / 2
	cx := float64(cols-1) / 2

	grid := make([][]ringCell, rows)
	for y := range grid {
		grid[y] = make([]ringCell, cols)
		for x := range grid[y] {
			grid[y][x] = ringCell{ch: ' ', color: t.TextDim}
		}
	}

	plot := func(angle float64, ch rune, color lipgloss.Color) {
		// Unit offsets around the sweep; x is stretched to counter the
		// cell aspect ratio.
		p := ring.TickPoint(angle, 0, 0, radius)
		x := int(math.Round(cx + p.X*2))
		y := int(math.Round(cy + p.Y))
		if y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		grid[y][x] = ringCell{ch: ch, color: color}
	}

	segmentAt := func(angle float64) (rune, lipgloss.Color, bool) {
		for _, seg := range st.Segments {
			if angle >= seg.StartAngle && angle < seg.EndAngle {
				return '█', StrokeColor(seg.Color), true
			}
		}
		return '·', t.TextDim, false
	}

	// Track first, fill on top, marker last so it stays visible.
	step := 360.0 / float64(rows*8)
	for a := 0.0; a < 360; a += step {
		ch, color, _ := segmentAt(a)
		plot(a, ch, color)
	}
	if st.Goal != nil {
		plot(st.Goal.Angle, '◆', t.AccentBright)
	}

	value, caption := ringCenterText(st)
	blitCentered(grid, rows/2-1, cx, value, t.TextPrimary)
	blitCentered(grid, rows/2+1, cx, caption, t.TextMuted)

	return renderRingGrid(grid, t.Surface)
}

// ringCenterText formats the center readout lines.
func ringCenterText(st ring.State) (value, caption string) {
	if st.Unset {
		return "--", "no profile"
	}
	return fmt.Sprintf("%s%.0f", st.Center.Sign, st.Center.Value),
		st.Center.Unit + " " + st.Center.Caption
}

func blitCentered(grid [][]ringCell, y int, cx float64, s string, color lipgloss.Color) {
	if y < 0 || y >= len(grid) {
		return
	}
	runes := []rune(s)
	start := int(cx) - len(runes)/2
	for i, r := range runes {
		x := start + i
		if x < 0 || x >= len(grid[y]) {
			continue
		}
		grid[y][x] = ringCell{ch: r, color: color}
	}
}

func renderRingGrid(grid [][]ringCell, bg lipgloss.Color) string {
	var out []string
	for _, row := range grid {
		line := ""
		// Batch runs of the same color into one style call.
		runStart := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].color == row[runStart].color {
				continue
			}
			var run []rune
			for _, c := range row[runStart:x] {
				run = append(run, c.ch)
			}
			line += lipgloss.NewStyle().
				Foreground(row[runStart].color).
				Background(bg).
				Render(string(run))
			runStart = x
		}
		out = append(out, line)
	}
	joined := ""
	for i, l := range out {
		if i > 0 {
			joined += "\n"
		}
		joined += l
	}
	return joined
}
