package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session status colors
const (
	ColorActive        Color = "2"   // Green - open
	ColorActiveClosing Color = "214" // Orange - open, closing soon
	ColorClosed        Color = "8"   // Gray - closed
	ColorUpcoming      Color = "3"   // Yellow - opens within the hour
	ColorUpcomingSoon  Color = "226" // Bright yellow - opens within 15 minutes
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorGolden    Color = "220" // Gold - overlap ranges on the timeline
	ColorHelpGroup Color = "141" // Purple
	ColorNowMarker Color = "205" // Pink - current time marker
	ColorWeekend   Color = "245" // Light gray - empty weekend state
)

// sessionColors maps the stored palette names to terminal colors. Unknown
// names fall back to the first palette entry.
var sessionColors = map[string]Color{
	"amber":   "214",
	"cyan":    "51",
	"emerald": "42",
	"lime":    "154",
	"pink":    "213",
	"rose":    "211",
	"sky":     "39",
	"violet":  "135",
}

// SessionColor resolves a stored palette name to a terminal color
func SessionColor(name string) Color {
	if c, ok := sessionColors[name]; ok {
		return c
	}
	return sessionColors["violet"]
}

// StatusColor maps a session status string to its terminal color
func StatusColor(status string) Color {
	switch status {
	case "active":
		return ColorActive
	case "active-closing":
		return ColorActiveClosing
	case "upcoming":
		return ColorUpcoming
	case "upcoming-soon":
		return ColorUpcomingSoon
	default:
		return ColorClosed
	}
}
