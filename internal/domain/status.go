package domain

import (
	"fmt"
	"time"
)

// Status thresholds. Fixed, not configurable.
const (
	ClosingSoonWindow = 30 * time.Minute
	OpeningSoonWindow = 15 * time.Minute
	UpcomingWindow    = 60 * time.Minute
)

// Occurrence is one concrete instance of a session's recurring window:
// specific open and close instants relative to a given "now".
type Occurrence struct {
	Close time.Time
	Open  time.Time
}

// Occurrence resolves the current-or-next occurrence of the session's window
// relative to now. If the session is open right now the returned occurrence
// is the one in progress, even when it opened before today's UTC midnight;
// otherwise it is the next one to open.
func (s Session) Occurrence(now time.Time) Occurrence {
	duration := time.Duration(s.WindowDuration() * float64(time.Hour))

	utc := now.UTC()
	open := time.Date(utc.Year(), utc.Month(), utc.Day(), s.UTCStartHour, 0, 0, 0, time.UTC)
	close := open.Add(duration)

	// Today's occurrence already over: the next one is tomorrow's
	if !utc.Before(close) {
		return Occurrence{Open: open.AddDate(0, 0, 1), Close: close.AddDate(0, 0, 1)}
	}

	// Not yet open today: the session may still be open from yesterday's
	// occurrence when its window crossed UTC midnight
	if utc.Before(open) {
		yesterdayOpen := open.AddDate(0, 0, -1)
		yesterdayClose := yesterdayOpen.Add(duration)
		if !utc.Before(yesterdayOpen) && utc.Before(yesterdayClose) {
			return Occurrence{Open: yesterdayOpen, Close: yesterdayClose}
		}
	}

	return Occurrence{Open: open, Close: close}
}

// ResolveStatus classifies a session relative to its resolved occurrence and
// produces the countdown line shown next to it. The resolver runs every
// second unattended, so malformed input degrades to Closed with an empty
// countdown instead of failing.
func ResolveStatus(now time.Time, occ Occurrence) (SessionStatus, string) {
	if !occ.Close.After(occ.Open) {
		return StatusClosed, ""
	}

	if !now.Before(occ.Open) && now.Before(occ.Close) {
		remaining := occ.Close.Sub(now)
		countdown := "Closes in " + FormatCountdown(remaining)
		if remaining <= ClosingSoonWindow {
			return StatusActiveClosing, countdown
		}
		return StatusActive, countdown
	}

	toOpen := occ.Open.Sub(now)
	if toOpen > 0 && toOpen <= UpcomingWindow {
		countdown := "Opens in " + FormatCountdown(toOpen)
		if toOpen <= OpeningSoonWindow {
			return StatusUpcomingSoon, countdown
		}
		return StatusUpcoming, countdown
	}

	// Open already in the past with no active window: count down to the
	// same time tomorrow
	if toOpen <= 0 {
		toOpen += 24 * time.Hour
	}
	return StatusClosed, "Opens in " + FormatCountdown(toOpen)
}

// FormatCountdown renders a duration as zero-padded HH:MM:SS. Sub-second
// remainder is dropped. Hours are total elapsed hours and are not wrapped
// at 24, so long countdowns read 25:00:00 and beyond.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
