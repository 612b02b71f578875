package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Session card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	CountdownStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MarketStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	OverlapBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorGolden).
				Bold(true)
)

// Timeline styles
var (
	GoldenHourStyle = lipgloss.NewStyle().
			Foreground(ColorGolden)

	NowMarkerStyle = lipgloss.NewStyle().
			Foreground(ColorNowMarker).
			Bold(true)

	TimelineAxisStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	WeekendStyle = lipgloss.NewStyle().
			Foreground(ColorWeekend).
			Italic(true).
			Padding(2, 0)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns a style for a given session status
func StatusStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(status))
}

// SessionStyle returns a style for a session's palette color
func SessionStyle(colorName string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SessionColor(colorName))
}
