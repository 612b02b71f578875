package ports

import "time"

// ZoneResolver converts zone identifiers into civil offsets and formatted
// local clock values. Implementations must treat domain.LocalZoneSentinel as
// "use the platform-detected zone".
type ZoneResolver interface {
	// Resolve maps a stored zone value to the effective IANA zone name
	Resolve(zone string) string

	// OffsetHours returns the zone's civil offset from UTC at the given
	// instant, in hours; fractional in quarter-hour increments
	OffsetHours(zone string, at time.Time) (float64, error)

	// FormatClock renders the instant as a zero-padded 24-hour HH:MM string
	// in the zone
	FormatClock(zone string, at time.Time) (string, error)

	// Weekday returns the local calendar weekday of the instant in the zone
	Weekday(zone string, at time.Time) (time.Weekday, error)
}
