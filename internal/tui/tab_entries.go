package tui

import (
	"fmt"
	"strings"
	"time"

	"calring/internal/cli"
	"calring/internal/model"
	"calring/internal/tui/components"
	"calring/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// entriesState holds the entries tab state.
type entriesState struct {
	cursor int
	offset int // scroll offset for the list
}

func (a App) renderEntriesTab(cw, h int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.state == nil || len(a.state.Entries) == 0 {
		return components.ContentCard("Entries",
			mutedStyle.Render("No entries yet. Log one: calring log \"two eggs and toast\""), cw)
	}

	entries := a.state.Entries
	es := a.entriesState
	now := time.Now()
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mealStyle := lipgloss.NewStyle().Foreground(t.Blue)
	workoutStyle := lipgloss.NewStyle().Foreground(t.Orange)

	visible := h - 7 // card border (2) + header row (2) + footer hint (3)
	if visible < 5 {
		visible = 5
	}

	offset := es.offset
	if es.cursor < offset {
		offset = es.cursor
	}
	if es.cursor >= offset+visible {
		offset = es.cursor - visible + 1
	}

	end := offset + visible
	if end > len(entries) {
		end = len(entries)
	}

	nameW := innerW - 34
	if nameW < 12 {
		nameW = 12
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %-8s %-*s %8s", "When", "Type", nameW, "Name", "Kcal")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	for i := offset; i < end; i++ {
		e := entries[i]
		typeStr := "meal"
		typeStyle := mealStyle
		if e.Type == model.Exercise {
			typeStr = "workout"
			typeStyle = workoutStyle
		}

		when := cli.FormatEntryTime(e.LoggedAt, now)
		line := fmt.Sprintf("%-12s %-8s %-*s %8s",
			when, typeStr, nameW, truncStr(e.Name, nameW), cli.FormatKcal(e.Cals))

		if i == es.cursor {
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(fmt.Sprintf("%-12s ", when)))
			body.WriteString(typeStyle.Render(fmt.Sprintf("%-8s ", typeStr)))
			body.WriteString(rowStyle.Render(fmt.Sprintf("%-*s %8s", nameW, truncStr(e.Name, nameW), cli.FormatKcal(e.Cals))))
		}
		body.WriteString("\n")
	}

	if sel, ok := a.selectedEntry(); ok {
		body.WriteString("\n")
		detail := fmt.Sprintf("[%s]  protein %s  fiber %s  sugar %s  fat %s",
			cli.ShortID(sel.ID),
			cli.FormatMacro(sel.Protein), cli.FormatMacro(sel.Fiber),
			cli.FormatMacro(sel.Sugar), cli.FormatMacro(sel.Fat))
		body.WriteString(mutedStyle.Render(truncStr(detail, innerW)))
		body.WriteString("\n")
	}
	body.WriteString(mutedStyle.Render("[j/k] navigate  [d] delete  [q] quit"))

	title := fmt.Sprintf("Entries (%d)", len(entries))
	return components.ContentCard(title, body.String(), cw)
}
