package domain

import "time"

// TradingSchedule is the global weekday filter
type TradingSchedule string

const (
	ScheduleContinuous TradingSchedule = "24/7"
	ScheduleWeekdays   TradingSchedule = "weekdays"
)

// ParseTradingSchedule maps a stored value to a schedule, defaulting to
// weekdays-only for anything unrecognized.
func ParseTradingSchedule(s string) TradingSchedule {
	if TradingSchedule(s) == ScheduleContinuous {
		return ScheduleContinuous
	}
	return ScheduleWeekdays
}

// IsTradingDay reports whether sessions are shown at all on the given local
// weekday. Under the weekdays-only schedule, Saturday and Sunday yield an
// empty dashboard.
func (ts TradingSchedule) IsTradingDay(day time.Weekday) bool {
	if ts == ScheduleContinuous {
		return true
	}
	return day != time.Saturday && day != time.Sunday
}

// LocalZoneSentinel is the stored timezone value meaning "use the
// platform-detected zone".
const LocalZoneSentinel = "local"

// Preferences are the persisted per-user display options
type Preferences struct {
	CompactMode     bool
	Schedule        TradingSchedule
	ShowGoldenHours bool
	ShowMarketPulse bool
	Theme           string // "dark" or "light"
	Timezone        string // IANA zone name or LocalZoneSentinel
}

// DefaultPreferences returns the options used before the user changes anything
func DefaultPreferences() Preferences {
	return Preferences{
		CompactMode:     false,
		Schedule:        ScheduleWeekdays,
		ShowGoldenHours: true,
		ShowMarketPulse: true,
		Theme:           "dark",
		Timezone:        LocalZoneSentinel,
	}
}

// Timezones offered by the picker, alongside the "local" sentinel
var Timezones = []string{
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/New_York",
	"Asia/Dubai",
	"Asia/Hong_Kong",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Europe/Berlin",
	"Europe/London",
	"UTC",
}
