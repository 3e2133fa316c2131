// Package tui provides the interactive Bubble Tea dashboard for calring.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"calring/internal/app"
	"calring/internal/config"
	"calring/internal/model"
	"calring/internal/tui/components"
	"calring/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the initial state load finishes.
type DataLoadedMsg struct {
	State    *app.State
	LoadTime time.Duration
}

// RefreshDataMsg is sent when a background data refresh completes.
type RefreshDataMsg struct {
	State    *app.State
	LoadTime time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	cfg  config.Config
	days int

	// Data
	state    *app.State
	loaded   bool
	loadTime time.Duration

	// Auto-refresh state
	refreshInterval time.Duration
	lastRefresh     time.Time
	refreshing      bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	entriesState entriesState
	settings     settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160

	minContentHeight = 5 // minimum content area height
)

const (
	tabToday = iota
	tabEntries
	tabTrends
	tabSettings
)

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config, days int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	if days <= 0 {
		days = cfg.General.DefaultDays
	}
	if days <= 0 {
		days = 7
	}

	return App{
		cfg:             cfg,
		days:            days,
		needSetup:       !config.Exists(),
		refreshInterval: 30 * time.Second,
		spinner:         sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.cfg),
		a.spinner.Tick,
		tickCmd(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabEntries && a.entriesState.cursor > 0 {
				a.entriesState.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabEntries && a.entriesState.cursor < a.entryCount()-1 {
				a.entriesState.cursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Entries tab has its own keybindings
		if a.activeTab == tabEntries {
			n := a.entryCount()
			switch key {
			case "j", "down":
				if a.entriesState.cursor < n-1 {
					a.entriesState.cursor++
				}
				return a, nil
			case "k", "up":
				if a.entriesState.cursor > 0 {
					a.entriesState.cursor--
				}
				return a, nil
			case "g":
				a.entriesState.cursor = 0
				a.entriesState.offset = 0
				return a, nil
			case "G":
				a.entriesState.cursor = n - 1
				if a.entriesState.cursor < 0 {
					a.entriesState.cursor = 0
				}
				return a, nil
			case "d", "backspace":
				if sel, ok := a.selectedEntry(); ok && !a.refreshing {
					a.refreshing = true
					return a, deleteEntryCmd(a.cfg, sel.ID)
				}
				return a, nil
			}
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		// Global quit
		if key == "q" {
			return a, tea.Quit
		}

		// Manual refresh
		if key == "r" && !a.refreshing {
			a.refreshing = true
			return a, refreshDataCmd(a.cfg)
		}

		// Tab navigation
		switch key {
		case "t":
			a.activeTab = tabToday
		case "e":
			a.activeTab = tabEntries
		case "n":
			a.activeTab = tabTrends
		case "x":
			a.activeTab = tabSettings
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case DataLoadedMsg:
		a.state = msg.State
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.lastRefresh = time.Now()
		a.clampCursor()

		// A config file without a usable profile still needs setup.
		if a.state != nil && !a.state.Profile.Valid() {
			a.needSetup = true
		}

		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals, profileOrZero(a.state))
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if a.loaded && !a.refreshing && !a.needSetup {
			if time.Since(a.lastRefresh) >= a.refreshInterval {
				a.refreshing = true
				cmds = append(cmds, refreshDataCmd(a.cfg))
			}
		}
		return a, tea.Batch(cmds...)

	case RefreshDataMsg:
		a.refreshing = false
		a.lastRefresh = time.Now()
		if msg.State != nil {
			a.state = msg.State
			a.loadTime = msg.LoadTime
			a.clampCursor()
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupProfile()
		a.needSetup = false
		a.setupForm = nil
		return a, loadDataCmd(a.cfg)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) entryCount() int {
	if a.state == nil {
		return 0
	}
	return len(a.state.Entries)
}

func (a App) selectedEntry() (model.LogEntry, bool) {
	if a.state == nil || a.entriesState.cursor >= len(a.state.Entries) {
		return model.LogEntry{}, false
	}
	return a.state.Entries[a.entriesState.cursor], true
}

func (a *App) clampCursor() {
	if a.entriesState.cursor >= a.entryCount() {
		a.entriesState.cursor = a.entryCount() - 1
	}
	if a.entriesState.cursor < 0 {
		a.entriesState.cursor = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  calring needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◯ calring"))
	b.WriteString(subtitleStyle.Render(" · Calorie & Exercise Tracker"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading entries..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◯ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"t e n x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate entries"},
		{"g G", "First / Last entry"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"d", "Delete selected entry"},
		{"Enter", "Edit setting"},
		{"Esc", "Cancel edit"},
		{"r", "Refresh data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + filter pill)
	filterPillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	filterAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	filterStr := filterPillStyle.Render(" ") +
		filterAccentStyle.Render(fmt.Sprintf("%dd", a.days))
	if a.cfg.General.User != "" && a.cfg.General.User != "default" {
		filterStr += filterPillStyle.Render(" │ ") + filterAccentStyle.Render(a.cfg.General.User)
	}
	filterStr += filterPillStyle.Render(" ")

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		filterRowStyle.Render(filterStr)

	// 2. Render status bar
	dataAge := fmt.Sprintf("%.0fs ago", time.Since(a.lastRefresh).Seconds())
	statusBar := components.RenderStatusBar(w, dataAge, a.refreshing)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case tabToday:
		content = a.renderTodayTab(cw)
	case tabEntries:
		content = a.renderEntriesTab(cw, contentH)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure the entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func loadState(cfg config.Config) (*app.State, error) {
	db, err := app.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	return app.Load(db, cfg.General.User, time.Now())
}

// loadDataCmd reads the full state in the background.
func loadDataCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		st, err := loadState(cfg)
		if err != nil {
			return DataLoadedMsg{LoadTime: time.Since(start)}
		}
		return DataLoadedMsg{State: st, LoadTime: time.Since(start)}
	}
}

// refreshDataCmd reloads state in the background (no loading UI).
func refreshDataCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		st, err := loadState(cfg)
		if err != nil {
			return RefreshDataMsg{LoadTime: time.Since(start)}
		}
		return RefreshDataMsg{State: st, LoadTime: time.Since(start)}
	}
}

// deleteEntryCmd deletes one entry and returns the refreshed state.
func deleteEntryCmd(cfg config.Config, id string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		db, err := app.Open(cfg)
		if err == nil {
			_, _ = db.DeleteEntries(cfg.General.User, []string{id})
			_ = db.Close()
		}
		st, _ := loadState(cfg)
		return RefreshDataMsg{State: st, LoadTime: time.Since(start)}
	}
}

func profileOrZero(st *app.State) model.Profile {
	if st == nil {
		return model.Profile{}
	}
	return st.Profile
}

// chartDateLabels builds compact X-axis labels for a chronological date series.
// First label: month abbreviation (e.g. "Jan"). Month boundaries: "Feb 1".
// Everything else (including last): just the day number.
// days is sorted newest-first; labels are returned oldest-left.
func chartDateLabels(days []model.DayTotals) []string {
	n := len(days)
	labels := make([]string, n)
	dates := make([]time.Time, n)
	for i, d := range days {
		dates[n-1-i] = d.Date
	}
	prevMonth := time.Month(0)
	for i, dt := range dates {
		m := dt.Month()
		day := dt.Day()
		switch {
		case i == 0:
			labels[i] = dt.Format("Jan")
		case i == n-1:
			labels[i] = strconv.Itoa(day)
		case m != prevMonth:
			labels[i] = dt.Format("Jan")
		default:
			labels[i] = strconv.Itoa(day)
		}
		prevMonth = m
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar:
// a one-column leading space, then tabs separated by two columns.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
