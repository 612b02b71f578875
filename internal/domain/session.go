package domain

// SessionStatus represents the live state of a trading session
type SessionStatus string

const (
	StatusActive        SessionStatus = "active"
	StatusActiveClosing SessionStatus = "active-closing"
	StatusClosed        SessionStatus = "closed"
	StatusUpcoming      SessionStatus = "upcoming"
	StatusUpcomingSoon  SessionStatus = "upcoming-soon"
)

// Status symbols (Unicode)
const (
	SymbolActive   = "●" // Green - market open
	SymbolClosed   = "○" // Gray - market closed
	SymbolUpcoming = "◐" // Yellow - opens within the hour
)

// IsOpen reports whether the status is one of the open variants.
// The per-session overlap flag is only meaningful while open.
func (s SessionStatus) IsOpen() bool {
	return s == StatusActive || s == StatusActiveClosing
}

// Symbol returns the list symbol for the status
func (s SessionStatus) Symbol() string {
	switch s {
	case StatusActive, StatusActiveClosing:
		return SymbolActive
	case StatusUpcoming, StatusUpcomingSoon:
		return SymbolUpcoming
	default:
		return SymbolClosed
	}
}

// Session represents a named, recurring daily UTC trading window (domain entity).
// UTCStartHour and UTCEndHour are whole hours in [0,23]. An end hour below the
// start hour means the window wraps past midnight (Sydney: 22 to 7).
type Session struct {
	Color        string `json:"color"`
	ID           string `json:"id"`
	Market       string `json:"market"`
	Name         string `json:"name"`
	UTCEndHour   int    `json:"utcEndHour"`
	UTCStartHour int    `json:"utcStartHour"`
}

// SessionColorNames is the palette offered by the edit form. The tokens are
// opaque to the core; the theme package maps them to terminal colors.
var SessionColorNames = []string{
	"violet",
	"rose",
	"cyan",
	"emerald",
	"sky",
	"amber",
	"lime",
	"pink",
}

// DefaultSessions returns the built-in session set used on first run,
// after a reset, and as the fallback when stored data cannot be read.
func DefaultSessions() []Session {
	return []Session{
		{ID: "syd", Name: "Sydney", Market: "Australia", UTCStartHour: 22, UTCEndHour: 7, Color: "violet"},
		{ID: "tok", Name: "Tokyo", Market: "Asia", UTCStartHour: 0, UTCEndHour: 9, Color: "rose"},
		{ID: "lon", Name: "London", Market: "Europe", UTCStartHour: 8, UTCEndHour: 17, Color: "cyan"},
		{ID: "nyc", Name: "New York", Market: "N. America", UTCStartHour: 13, UTCEndHour: 22, Color: "emerald"},
	}
}
