package tui

import (
	"fmt"
	"strings"

	"calring/internal/cli"
	"calring/internal/ring"
	"calring/internal/tui/components"
	"calring/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ringGeo fixes the coordinate frame for goal tick endpoints. The TUI ring
// renderer works on its own character grid, but serve and tests share this
// frame, so the mapper is always fed the same geometry.
var ringGeo = ring.Geometry{
	CenterX:    60,
	CenterY:    60,
	TickInnerR: 45,
	TickOuterR: 54,
}

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	st := a.state

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if st == nil {
		return components.ContentCard("Today", mutedStyle.Render("No data loaded"), cw)
	}

	rs := ring.Map(st.RingInput(), ringGeo)
	net := st.Net()
	today := st.Today

	var b strings.Builder

	// Row 1: Metric cards
	netLabel := "Deficit"
	netValue := cli.FormatKcal(-net.Net)
	if net.Net > 0 {
		netLabel = "Surplus"
		netValue = cli.FormatKcal(net.Net)
	}
	if rs.Unset {
		netValue = "--"
	}

	tdeeValue := "--"
	tdeeDelta := "run setup"
	if st.Energy.TDEE > 0 {
		tdeeValue = cli.FormatKcal(st.Energy.TDEE)
		tdeeDelta = "BMR " + cli.FormatKcal(st.Energy.BMR)
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Eaten", cli.FormatKcal(today.CaloriesIn), fmt.Sprintf("%d meals", today.Meals)},
		{"Burned", cli.FormatKcal(today.CaloriesOut), fmt.Sprintf("%d workouts", today.Workouts)},
		{netLabel, netValue, fmt.Sprintf("%+.2f lbs fat", net.FatChange)},
		{"TDEE", tdeeValue, tdeeDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: ring + budget detail side by side
	halves := components.LayoutRow(cw, 2)

	ringRows := 15
	if a.isCompactLayout() {
		ringRows = 11
	}
	ringCard := components.ContentCard("Ring", components.RenderRing(rs, ringRows), halves[0])
	budgetCard := components.ContentCard("Budget", a.renderBudgetBody(rs, halves[1]), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Ring", components.RenderRing(rs, ringRows), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Budget", a.renderBudgetBody(rs, cw), cw))
	} else {
		b.WriteString(components.CardRow([]string{ringCard, budgetCard}))
	}

	return b.String()
}

// renderBudgetBody shows the day's calorie budget, goal status, and macros.
func (a App) renderBudgetBody(rs ring.State, w int) string {
	t := theme.Active
	st := a.state
	net := st.Net()
	today := st.Today

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	yellowStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(w)

	var body strings.Builder

	if rs.Unset {
		body.WriteString(labelStyle.Render("No profile yet."))
		body.WriteString("\n")
		body.WriteString(dimStyle.Render("Run `calring setup` to compute your budget."))
		return body.String()
	}

	barW := innerW - 18
	if barW < 10 {
		barW = 10
	}
	body.WriteString(components.BudgetBar("Pool", today.CaloriesIn, net.CaloriePool, 6, barW))
	body.WriteString("\n\n")

	// Goal line colored by ring stroke
	if rs.Goal != nil {
		goal := float64(st.Goal.DailyDeficitKcal)
		displayDeficit := -net.Net
		if displayDeficit < 0 {
			displayDeficit = 0
		}
		switch rs.Stroke {
		case ring.Green:
			body.WriteString(greenStyle.Render(fmt.Sprintf("On track: %s kcal of the %s goal still available",
				cli.FormatKcal(displayDeficit), cli.FormatKcal(goal))))
		case ring.Yellow:
			body.WriteString(yellowStyle.Render(fmt.Sprintf("Past the goal marker: %s kcal deficit left of %s",
				cli.FormatKcal(displayDeficit), cli.FormatKcal(goal))))
		default:
			body.WriteString(redStyle.Render(fmt.Sprintf("Over budget by %s kcal", cli.FormatKcal(net.Net))))
		}
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(fmt.Sprintf("Goal marker at %.0f°", rs.Goal.Angle)))
		body.WriteString("\n\n")
	} else if net.Net > 0 {
		body.WriteString(redStyle.Render(fmt.Sprintf("Over budget by %s kcal", cli.FormatKcal(net.Net))))
		body.WriteString("\n\n")
	}

	// Macros
	body.WriteString(labelStyle.Render("Macros"))
	body.WriteString("\n")
	macros := []struct {
		name  string
		grams float64
	}{
		{"Protein", today.Macros.Protein},
		{"Fiber", today.Macros.Fiber},
		{"Sugar", today.Macros.Sugar},
		{"Fat", today.Macros.Fat},
	}
	for _, m := range macros {
		body.WriteString(labelStyle.Render(fmt.Sprintf("  %-8s ", m.name)))
		body.WriteString(valueStyle.Render(cli.FormatMacro(m.grams)))
		body.WriteString("\n")
	}

	return body.String()
}
