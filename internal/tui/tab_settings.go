package tui

import (
	"fmt"
	"strconv"
	"strings"

	"calring/internal/cli"
	"calring/internal/config"
	"calring/internal/tui/components"
	"calring/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldAPIKey = iota
	settingsFieldModel
	settingsFieldTheme
	settingsFieldDays
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

// loadConfigOrDefault loads config, returning defaults on error so the
// settings tab always has something to edit.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldAPIKey:
		ti.Placeholder = "sk-..."
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
		if cfg.OpenAI.APIKey != "" {
			ti.SetValue(cfg.OpenAI.APIKey)
		}
	case settingsFieldModel:
		ti.Placeholder = "gpt-4o-mini"
		ti.SetValue(cfg.OpenAI.Model)
		ti.EchoMode = textinput.EchoNormal
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
		ti.EchoMode = textinput.EchoNormal
	case settingsFieldDays:
		ti.Placeholder = "7"
		ti.SetValue(strconv.Itoa(cfg.General.DefaultDays))
		ti.EchoMode = textinput.EchoNormal
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldAPIKey:
		cfg.OpenAI.APIKey = val
	case settingsFieldModel:
		cfg.OpenAI.Model = val
	case settingsFieldTheme:
		// Validate theme name
		found := false
		for _, t := range theme.All {
			if t.Name == val {
				found = true
				break
			}
		}
		if found {
			cfg.Appearance.Theme = val
			theme.SetActive(val)
		}
	case settingsFieldDays:
		var d int
		if _, err := fmt.Sscanf(val, "%d", &d); err == nil && d > 0 {
			cfg.General.DefaultDays = d
			a.days = d
		}
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.cfg = cfg
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	apiKeyDisplay := "(not set)"
	if key := cfg.OpenAI.APIKey; key != "" {
		if len(key) > 12 {
			apiKeyDisplay = key[:8] + "..." + key[len(key)-4:]
		} else {
			apiKeyDisplay = "****"
		}
	}

	modelDisplay := cfg.OpenAI.Model
	if modelDisplay == "" {
		modelDisplay = "(default)"
	}

	fields := []field{
		{"Estimation API Key", apiKeyDisplay},
		{"Estimation Model", modelDisplay},
		{"Theme", cfg.Appearance.Theme},
		{"Default Days", strconv.Itoa(cfg.General.DefaultDays)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			// Selected row with marker and highlight
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	entryCount := 0
	if a.state != nil {
		entryCount = len(a.state.Entries)
	}
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Database:       ") + valueStyle.Render(config.DBPath(cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Entries loaded: ") + valueStyle.Render(cli.FormatNumber(int64(entryCount))) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:      ") + valueStyle.Render(fmt.Sprintf("%dms", a.loadTime.Milliseconds())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:    ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
