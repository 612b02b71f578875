package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Display     DisplayKeys
	Navigation  NavigationKeys
	Sessions    SessionKeys
}

// ApplicationKeys are app-level shortcuts
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NavigationKeys move the card selection
type NavigationKeys struct {
	Down key.Binding
	Up   key.Binding
}

// SessionKeys manage the session list
type SessionKeys struct {
	Delete key.Binding
	Edit   key.Binding
	New    key.Binding
	Reset  key.Binding
}

// DisplayKeys toggle the display preferences
type DisplayKeys struct {
	CompactMode key.Binding
	GoldenHours key.Binding
	MarketPulse key.Binding
	Schedule    key.Binding
	Theme       key.Binding
	Timezone    key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "force quit"),
			),
			Help: key.NewBinding(
				key.WithKeys("?", "h"),
				key.WithHelp("?", "help"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
		Display: DisplayKeys{
			CompactMode: key.NewBinding(
				key.WithKeys("c"),
				key.WithHelp("c", "compact mode"),
			),
			GoldenHours: key.NewBinding(
				key.WithKeys("g"),
				key.WithHelp("g", "golden hours"),
			),
			MarketPulse: key.NewBinding(
				key.WithKeys("p"),
				key.WithHelp("p", "market pulse"),
			),
			Schedule: key.NewBinding(
				key.WithKeys("w"),
				key.WithHelp("w", "24/7 / weekdays"),
			),
			Theme: key.NewBinding(
				key.WithKeys("t"),
				key.WithHelp("t", "theme"),
			),
			Timezone: key.NewBinding(
				key.WithKeys("z"),
				key.WithHelp("z", "timezone"),
			),
		},
		Navigation: NavigationKeys{
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "next session"),
			),
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "previous session"),
			),
		},
		Sessions: SessionKeys{
			Delete: key.NewBinding(
				key.WithKeys("d", "x"),
				key.WithHelp("d", "delete session"),
			),
			Edit: key.NewBinding(
				key.WithKeys("e", "enter"),
				key.WithHelp("e", "edit session"),
			),
			New: key.NewBinding(
				key.WithKeys("n", "a"),
				key.WithHelp("n", "new session"),
			),
			Reset: key.NewBinding(
				key.WithKeys("R"),
				key.WithHelp("R", "reset to defaults"),
			),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Sessions.New,
		k.Sessions.Edit,
		k.Sessions.Delete,
		k.Display.Timezone,
		k.Display.Theme,
		k.Application.Help,
		k.Application.Quit,
	}
}

// ReadOnlyShortHelp is the bottom bar variant without the mutation keys
func (k KeyMap) ReadOnlyShortHelp() []key.Binding {
	return []key.Binding{
		k.Display.Timezone,
		k.Display.Theme,
		k.Display.CompactMode,
		k.Application.Help,
		k.Application.Quit,
	}
}
