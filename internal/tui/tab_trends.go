package tui

import (
	"fmt"
	"strings"
	"time"

	"calring/internal/cli"
	"calring/internal/energy"
	"calring/internal/model"
	"calring/internal/tui/components"
	"calring/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	st := a.state

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if st == nil {
		return components.ContentCard("Trends", mutedStyle.Render("No data loaded"), cw)
	}

	now := time.Now()
	since := now.AddDate(0, 0, -(a.days - 1))
	days := energy.Days(st.Entries, since, now)
	win := st.Window(a.days, now)

	var b strings.Builder

	// Row 1: window stat cards
	cards := []struct{ Label, Value, Delta string }{
		{"Active Days", fmt.Sprintf("%d/%d", win.ActiveDays, win.WindowDays), fmt.Sprintf("%.1f entries/day", win.EntriesPerDay)},
		{"Avg Eaten", cli.FormatKcal(win.AvgCaloriesIn), cli.FormatKcal(win.AvgCaloriesOut) + " burned"},
		{"Avg Deficit", cli.FormatKcal(win.AvgDailyDeficit), cli.FormatKcal(win.TotalDeficit) + " total"},
		{"Fat Change", fmt.Sprintf("%+.1f lbs", -win.EstFatLossLbs), "estimated"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: daily calories eaten chart (chronological, oldest left)
	if len(days) > 0 {
		chartVals := make([]float64, len(days))
		for i, d := range days {
			chartVals[len(days)-1-i] = d.CaloriesIn
		}
		chartLabels := chartDateLabels(days)
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Calories Eaten (%dd)", a.days),
			components.BarChart(chartVals, chartLabels, t.Blue, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: burned sparkline + per-day net summary
	halves := components.LayoutRow(cw, 2)

	burnVals := make([]float64, len(days))
	var burnTotal float64
	for i, d := range days {
		burnVals[len(days)-1-i] = d.CaloriesOut
		burnTotal += d.CaloriesOut
	}
	burnBody := components.Sparkline(burnVals, t.Orange) + "\n" +
		mutedStyle.Render(fmt.Sprintf("%s kcal burned over %d days", cli.FormatKcal(burnTotal), a.days))

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Workouts", burnBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Daily Net",
			a.renderDailyNetBody(days, components.CardInnerWidth(cw)), cw))
	} else {
		burnCard := components.ContentCard("Workouts", burnBody, halves[0])
		netCard := components.ContentCard("Daily Net",
			a.renderDailyNetBody(days, components.CardInnerWidth(halves[1])), halves[1])
		b.WriteString(components.CardRow([]string{burnCard, netCard}))
	}

	return b.String()
}

// renderDailyNetBody lists recent days with their net against the pool.
// A day with no entries shows a dash instead of a fake full-TDEE deficit.
func (a App) renderDailyNetBody(days []model.DayTotals, innerW int) string {
	t := theme.Active
	tdee := a.state.Energy.TDEE

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	limit := 7
	if len(days) < limit {
		limit = len(days)
	}

	var body strings.Builder
	for _, d := range days[:limit] {
		day := fmt.Sprintf("%s %s", cli.FormatDayOfWeek(int(d.Date.Weekday())), d.Date.Format("Jan 2"))
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-11s ", day)))

		if d.Meals == 0 && d.Workouts == 0 {
			body.WriteString(dimStyle.Render("—"))
			body.WriteString("\n")
			continue
		}

		net := energy.Net(d, tdee)
		body.WriteString(valueStyle.Render(fmt.Sprintf("%6s in ", cli.FormatKcal(d.CaloriesIn))))
		if net.Net > 0 {
			body.WriteString(redStyle.Render(cli.FormatSignedKcal(net.Net)))
		} else {
			body.WriteString(greenStyle.Render(cli.FormatSignedKcal(net.Net)))
		}
		body.WriteString("\n")
	}
	if limit == 0 {
		body.WriteString(dimStyle.Render("No days in window"))
	}
	return body.String()
}
