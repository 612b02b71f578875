package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"horae/internal/domain"
)

// TimezonePickerResult contains the chosen timezone
type TimezonePickerResult struct {
	Cancelled bool
	Timezone  string
}

// TimezonePicker is a Bubble Tea component for choosing the display timezone
type TimezonePicker struct {
	Completed bool

	form   *huh.Form
	result TimezonePickerResult
}

// NewTimezonePicker creates a picker pre-selected on the current choice
func NewTimezonePicker(current string) *TimezonePicker {
	tp := &TimezonePicker{
		result: TimezonePickerResult{Timezone: current},
	}

	options := []huh.Option[string]{
		huh.NewOption("Local time", domain.LocalZoneSentinel),
	}
	for _, zone := range domain.Timezones {
		options = append(options, huh.NewOption(zone, zone))
	}

	tp.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display timezone").
				Description("All clocks, the timeline and the now marker follow this zone").
				Options(options...).
				Value(&tp.result.Timezone),
		),
	)

	return tp
}

func (tp *TimezonePicker) Init() tea.Cmd {
	return tp.form.Init()
}

func (tp *TimezonePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tp.Completed = true
			tp.result.Cancelled = true
			return tp, nil
		}
	}

	form, cmd := tp.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tp.form = f
	}

	if tp.form.State == huh.StateCompleted {
		tp.Completed = true
	}

	return tp, cmd
}

func (tp *TimezonePicker) View() string {
	if tp.form != nil {
		return tp.form.View()
	}
	return ""
}

// Result returns the picker result
func (tp *TimezonePicker) Result() TimezonePickerResult {
	return tp.result
}
