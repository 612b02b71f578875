package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"horae/internal/domain"
	"horae/internal/logging"
	"horae/internal/ports"
	"horae/internal/services"
	"horae/internal/theme"
)

type uiState int

const (
	stateDashboard uiState = iota
	stateConfirmingDelete
	stateConfirmingReset
	stateEditingSession
	stateHelp
	statePickingTimezone
)

// Model is the root Bubble Tea model. It holds the session list and the
// preferences as source data, and recomputes every derived value from a
// single sampled instant on each tick or edit.
type Model struct {
	confirmChoice   *bool              // Confirmation decision (pointer to persist across updates)
	confirmForm     *Dialog            // Delete/reset confirmation dialog
	details         []services.SessionDetails
	devMode         bool               // Development mode (shows version info in dialogs)
	editingID       string             // Session being edited (empty when creating)
	goldenActive    bool               // Now is inside a golden-hour range
	goldenRanges    []domain.Interval
	height          int
	helpScreen      *Dialog            // Help screen dialog
	keys            KeyMap             // Keyboard shortcuts
	laneCount       int
	lanes           map[string]int
	localClock      string             // Wall clock in the display zone
	localNowHour    float64
	now             time.Time          // Instant of the last derivation pass
	offsetHours     float64
	pendingDeleteID string             // Session awaiting delete confirmation
	prefService     *services.PreferenceService
	prefs           domain.Preferences
	projector       *services.Projector
	readOnly        bool               // SSH mode: no session mutations, no preference writes
	selected        int                // Card selection index
	sessionForm     *Dialog            // Session create/edit dialog
	sessionService  *services.SessionService
	sessions        []domain.Session
	state           uiState
	timezonePicker  *Dialog            // Timezone picker dialog
	weekend         bool               // Non-trading day in the display zone
	width           int
	zones           ports.ZoneResolver
}

// NewModel loads the sessions and preferences and derives the first frame.
// A read-only model (SSH sessions) keeps the session keys inert and applies
// preference toggles in memory only, so remote viewers never write to the
// shared store.
func NewModel(
	devMode bool,
	readOnly bool,
	sessionService *services.SessionService,
	prefService *services.PreferenceService,
	projector *services.Projector,
	zones ports.ZoneResolver,
) *Model {
	ctx := context.Background()
	m := &Model{
		devMode:        devMode,
		keys:           NewKeyMap(),
		readOnly:       readOnly,
		prefService:    prefService,
		prefs:          prefService.Load(ctx),
		projector:      projector,
		sessionService: sessionService,
		sessions:       sessionService.Load(ctx),
		state:          stateDashboard,
		zones:          zones,
	}
	m.rederive(time.Now())
	return m
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd samples the clock once per second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// rederive recomputes every derived value from one instant. Edits call this
// with the held now so a save and a clock tick never mix in one frame.
func (m *Model) rederive(now time.Time) {
	m.now = now
	zone := m.zones.Resolve(m.prefs.Timezone)

	weekday, err := m.zones.Weekday(zone, now)
	if err != nil {
		weekday = now.UTC().Weekday()
	}
	m.weekend = !m.prefs.Schedule.IsTradingDay(weekday)

	m.offsetHours = m.projector.OffsetHours(zone, now)
	m.localNowHour = services.LocalNowHour(now, m.offsetHours)
	m.details = m.projector.Project(m.sessions, now, zone, m.prefs.Schedule)
	m.lanes, m.laneCount = domain.AssignLanes(m.sessions, m.offsetHours)
	m.goldenRanges = m.projector.GoldenHours(m.details, m.offsetHours)

	m.goldenActive = domain.IsWithin(m.localNowHour, m.goldenRanges)

	if clock, err := m.zones.FormatClock(zone, now); err == nil {
		m.localClock = clock
	} else {
		m.localClock = "N/A"
	}

	if m.selected >= len(m.details) {
		m.selected = len(m.details) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks keep flowing in every state so a reopened dashboard is current
	if tick, ok := msg.(tickMsg); ok {
		m.rederive(time.Time(tick))
		return m, tickCmd()
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	switch m.state {
	case stateDashboard:
		return m.updateDashboard(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateConfirmingReset:
		return m.updateConfirmingReset(msg)
	case stateEditingSession:
		return m.updateEditingSession(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case statePickingTimezone:
		return m.updatePickingTimezone(msg)
	}
	return m, nil
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit, m.keys.Application.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Navigation.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Down):
		if m.selected < len(m.details)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Sessions.New):
		if m.readOnly {
			return m, nil
		}
		contentForm := NewSessionForm(m.sessions, "", services.SessionDraft{})
		m.editingID = ""
		m.sessionForm = NewDialog("New Session", contentForm, m.devMode)
		m.state = stateEditingSession
		return m, m.sessionForm.Init()

	case key.Matches(keyMsg, m.keys.Sessions.Edit):
		if m.readOnly || len(m.details) == 0 {
			return m, nil
		}
		session := m.details[m.selected].Session
		draft := services.SessionDraft{
			Color:        session.Color,
			Market:       session.Market,
			Name:         session.Name,
			UTCEndHour:   session.UTCEndHour,
			UTCStartHour: session.UTCStartHour,
		}
		m.editingID = session.ID
		contentForm := NewSessionForm(m.sessions, session.ID, draft)
		m.sessionForm = NewDialog("Edit Session", contentForm, m.devMode)
		m.state = stateEditingSession
		return m, m.sessionForm.Init()

	case key.Matches(keyMsg, m.keys.Sessions.Delete):
		if m.readOnly || len(m.details) == 0 {
			return m, nil
		}
		session := m.details[m.selected].Session
		m.pendingDeleteID = session.ID
		confirm := false
		m.confirmChoice = &confirm
		m.confirmForm = NewDialog("Delete Session", m.createConfirmForm(
			fmt.Sprintf("Delete %s?", session.Name),
			"The session is removed from the dashboard and the timeline.",
		), m.devMode)
		m.state = stateConfirmingDelete
		return m, m.confirmForm.Init()

	case key.Matches(keyMsg, m.keys.Sessions.Reset):
		if m.readOnly {
			return m, nil
		}
		confirm := false
		m.confirmChoice = &confirm
		m.confirmForm = NewDialog("Reset Sessions", m.createConfirmForm(
			"Reset to the default sessions?",
			"All custom sessions are replaced by Sydney, Tokyo, London and New York.",
		), m.devMode)
		m.state = stateConfirmingReset
		return m, m.confirmForm.Init()

	case key.Matches(keyMsg, m.keys.Display.Timezone):
		contentForm := NewTimezonePicker(m.prefs.Timezone)
		m.timezonePicker = NewDialog("Timezone", contentForm, m.devMode)
		m.state = statePickingTimezone
		return m, m.timezonePicker.Init()

	case key.Matches(keyMsg, m.keys.Display.Theme):
		if m.prefs.Theme == "dark" {
			m.prefs.Theme = "light"
		} else {
			m.prefs.Theme = "dark"
		}
		m.savePreferences()
		return m, nil

	case key.Matches(keyMsg, m.keys.Display.CompactMode):
		m.prefs.CompactMode = !m.prefs.CompactMode
		m.savePreferences()
		return m, nil

	case key.Matches(keyMsg, m.keys.Display.GoldenHours):
		m.prefs.ShowGoldenHours = !m.prefs.ShowGoldenHours
		m.savePreferences()
		return m, nil

	case key.Matches(keyMsg, m.keys.Display.MarketPulse):
		m.prefs.ShowMarketPulse = !m.prefs.ShowMarketPulse
		m.savePreferences()
		return m, nil

	case key.Matches(keyMsg, m.keys.Display.Schedule):
		if m.prefs.Schedule == domain.ScheduleContinuous {
			m.prefs.Schedule = domain.ScheduleWeekdays
		} else {
			m.prefs.Schedule = domain.ScheduleContinuous
		}
		m.savePreferences()
		m.rederive(m.now)
		return m, nil
	}

	return m, nil
}

// savePreferences persists the current preferences best-effort. Read-only
// models keep their toggles in memory for the life of the connection.
func (m *Model) savePreferences() {
	if m.readOnly {
		return
	}
	m.prefService.Save(context.Background(), m.prefs)
}

func (m *Model) updateEditingSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.sessionForm.Update(msg)
	m.sessionForm = updated.(*Dialog)

	if content, ok := m.sessionForm.Content().(*SessionForm); ok && content.Completed {
		result := content.Result()
		editingID := m.editingID
		m.state = stateDashboard
		m.sessionForm = nil
		m.editingID = ""

		if !result.Cancelled {
			ctx := context.Background()
			var err error
			if editingID == "" {
				m.sessions, err = m.sessionService.Create(ctx, m.sessions, result.Draft)
			} else {
				m.sessions, err = m.sessionService.Update(ctx, m.sessions, editingID, result.Draft)
			}
			if err != nil {
				// The form validates before completing, so this only fires
				// on a stale id
				logging.Logger.Warn("Session save rejected", "error", err)
			}
			m.rederive(m.now)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.cancelConfirm(msg) {
		return m, nil
	}

	updated, cmd := m.confirmForm.Update(msg)
	m.confirmForm = updated.(*Dialog)

	if form, ok := m.confirmForm.Content().(*huh.Form); ok && form.State == huh.StateCompleted {
		confirmed := *m.confirmChoice
		id := m.pendingDeleteID
		m.resetConfirmState()

		if confirmed {
			m.sessions = m.sessionService.Delete(context.Background(), m.sessions, id)
			m.rederive(m.now)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateConfirmingReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.cancelConfirm(msg) {
		return m, nil
	}

	updated, cmd := m.confirmForm.Update(msg)
	m.confirmForm = updated.(*Dialog)

	if form, ok := m.confirmForm.Content().(*huh.Form); ok && form.State == huh.StateCompleted {
		confirmed := *m.confirmChoice
		m.resetConfirmState()

		if confirmed {
			m.sessions = m.sessionService.Reset(context.Background())
			m.rederive(m.now)
		}
		return m, nil
	}

	return m, cmd
}

// cancelConfirm handles Escape or Ctrl+C while a confirmation is open
func (m *Model) cancelConfirm(msg tea.Msg) bool {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || key.Matches(keyMsg, m.keys.Application.ForceQuit) {
			m.resetConfirmState()
			return true
		}
	}
	if m.confirmForm == nil {
		m.resetConfirmState()
		return true
	}
	return false
}

func (m *Model) resetConfirmState() {
	m.state = stateDashboard
	m.confirmForm = nil
	m.confirmChoice = nil
	m.pendingDeleteID = ""
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateDashboard
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) updatePickingTimezone(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.timezonePicker.Update(msg)
	m.timezonePicker = updated.(*Dialog)

	if content, ok := m.timezonePicker.Content().(*TimezonePicker); ok && content.Completed {
		result := content.Result()
		m.state = stateDashboard
		m.timezonePicker = nil

		if !result.Cancelled && result.Timezone != m.prefs.Timezone {
			m.prefs.Timezone = result.Timezone
			m.savePreferences()
			m.rederive(m.now)
		}
		return m, nil
	}

	return m, cmd
}

// createConfirmForm builds a yes/no confirmation bound to m.confirmChoice
func (m *Model) createConfirmForm(title, description string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(m.confirmChoice).
				Affirmative("Yes").
				Negative("No"),
		),
	)
}

func (m *Model) View() string {
	switch m.state {
	case stateDashboard:
		return m.viewDashboard()
	case stateConfirmingDelete, stateConfirmingReset:
		if m.confirmForm != nil {
			return m.confirmForm.View()
		}
	case stateEditingSession:
		if m.sessionForm != nil {
			return m.sessionForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case statePickingTimezone:
		if m.timezonePicker != nil {
			return m.timezonePicker.View()
		}
	}
	return ""
}

func (m *Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString("\n")

	zoneLabel := m.prefs.Timezone
	if zoneLabel == domain.LocalZoneSentinel {
		zoneLabel = m.zones.Resolve(m.prefs.Timezone)
	}
	b.WriteString(renderClockHeader(m.localClock, zoneLabel))
	b.WriteString("\n")

	if m.weekend {
		b.WriteString("\n")
		b.WriteString(renderWeekendNotice())
		b.WriteString("\n")
		b.WriteString(m.renderShortHelpBar())
		return b.String()
	}

	if m.prefs.ShowMarketPulse {
		b.WriteString(renderMarketPulse(m.details, m.goldenActive && m.prefs.ShowGoldenHours))
		b.WriteString("\n")
	}

	if len(m.sessions) > 0 {
		timelineWidth := m.width - 2
		if timelineWidth < minTimelineWidth {
			timelineWidth = minTimelineWidth
		}
		selectedID := ""
		if m.selected < len(m.details) {
			selectedID = m.details[m.selected].ID
		}
		b.WriteString("\n")
		b.WriteString(renderTimeline(
			m.details, m.lanes, m.laneCount,
			m.offsetHours, m.localNowHour,
			m.goldenRanges, m.prefs.ShowGoldenHours,
			selectedID, timelineWidth,
		))
		b.WriteString("\n")
	}

	if len(m.details) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.SubtleStyle.Render("No sessions configured. Press n to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(renderSessionCards(m.details, m.selected, m.prefs.CompactMode))
		b.WriteString("\n")
	}

	b.WriteString(m.renderShortHelpBar())
	return b.String()
}

// renderShortHelpBar shows the curated bindings at the bottom. Read-only
// models hide the session mutation keys.
func (m *Model) renderShortHelpBar() string {
	bindings := m.keys.ShortHelp()
	if m.readOnly {
		bindings = m.keys.ReadOnlyShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, " • "))
}
