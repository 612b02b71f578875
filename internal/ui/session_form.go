package ui

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"horae/internal/domain"
	"horae/internal/services"
)

// SessionFormResult contains the result of the session create/edit form
type SessionFormResult struct {
	Cancelled bool
	Draft     services.SessionDraft
}

// SessionForm is a Bubble Tea component for creating or editing a session.
// The same form serves both; editing pre-fills the fields and passes the
// session id so the uniqueness check skips it.
type SessionForm struct {
	Completed bool // Exported so Model can check completion

	endHour   string
	existing  []domain.Session
	form      *huh.Form
	result    SessionFormResult
	sessionID string // empty when creating
	startHour string
}

// NewSessionForm creates a session form. A non-empty sessionID means edit
// mode: the draft pre-fills from the session and the validation skips it in
// the duplicate-name check.
func NewSessionForm(existing []domain.Session, sessionID string, draft services.SessionDraft) *SessionForm {
	sf := &SessionForm{
		existing:  existing,
		result:    SessionFormResult{Draft: draft},
		sessionID: sessionID,
		startHour: strconv.Itoa(draft.UTCStartHour),
		endHour:   strconv.Itoa(draft.UTCEndHour),
	}
	if sf.result.Draft.Color == "" {
		sf.result.Draft.Color = domain.SessionColorNames[0]
	}

	colorOptions := make([]huh.Option[string], 0, len(domain.SessionColorNames))
	for _, name := range domain.SessionColorNames {
		colorOptions = append(colorOptions, huh.NewOption(name, name))
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session name").
				Value(&sf.result.Draft.Name).
				Validate(func(s string) error {
					probe := sf.currentDraft()
					probe.Name = s
					return validateField(probe, sf.existing, sf.sessionID, "name")
				}),
			huh.NewInput().
				Title("Market").
				Description("Region or exchange label, e.g. Europe or NYSE").
				Value(&sf.result.Draft.Market).
				Validate(func(s string) error {
					probe := sf.currentDraft()
					probe.Market = s
					return validateField(probe, sf.existing, sf.sessionID, "market")
				}),
			huh.NewInput().
				Title("Opens at (UTC hour)").
				Description("Whole hour 0-23").
				Value(&sf.startHour).
				Validate(func(s string) error {
					hour, err := parseHour(s)
					if err != nil {
						return err
					}
					probe := sf.currentDraft()
					probe.UTCStartHour = hour
					return validateField(probe, sf.existing, sf.sessionID, "start hour")
				}),
			huh.NewInput().
				Title("Closes at (UTC hour)").
				Description("Whole hour 0-23. An end before the start wraps past midnight.").
				Value(&sf.endHour).
				Validate(func(s string) error {
					hour, err := parseHour(s)
					if err != nil {
						return err
					}
					probe := sf.currentDraft()
					probe.UTCEndHour = hour
					return validateField(probe, sf.existing, sf.sessionID, "end hour")
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&sf.result.Draft.Color),
		),
	)

	return sf
}

func (sf *SessionForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SessionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.Completed = true
			sf.result.Cancelled = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.result.Draft = sf.currentDraft()
		sf.Completed = true
	}

	return sf, cmd
}

func (sf *SessionForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SessionForm) Result() SessionFormResult {
	return sf.result
}

// currentDraft assembles the draft from the form state, with the hour fields
// parsed best-effort.
func (sf *SessionForm) currentDraft() services.SessionDraft {
	draft := sf.result.Draft
	if hour, err := parseHour(sf.startHour); err == nil {
		draft.UTCStartHour = hour
	}
	if hour, err := parseHour(sf.endHour); err == nil {
		draft.UTCEndHour = hour
	}
	return draft
}

func parseHour(s string) (int, error) {
	hour, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("enter a whole hour between 0 and 23")
	}
	return hour, nil
}

// validateField runs the full draft validation but only surfaces the error
// when it belongs to the field being edited, so each input shows its own
// problem.
func validateField(draft services.SessionDraft, existing []domain.Session, excludeID, field string) error {
	err := services.ValidateDraft(draft, existing, excludeID)
	if err == nil {
		return nil
	}
	var vErr *services.ValidationError
	if errors.As(err, &vErr) && vErr.Field == field {
		return fmt.Errorf("%s", vErr.Message)
	}
	return nil
}
