package domain

import "math"

// Interval is a half-open range [Start, End) of hours on the 24-hour day
// circle. Start and End are fractional hours in [0, 24].
type Interval struct {
	End   float64
	Start float64
}

// Duration returns the length of the interval in hours
func (i Interval) Duration() float64 {
	return i.End - i.Start
}

// Contains reports whether the given hour falls inside the interval
// (half-open: touching the end point does not count).
func (i Interval) Contains(hour float64) bool {
	return hour >= i.Start && hour < i.End
}

// Overlaps reports whether two intervals share any time. Half-open
// semantics: intervals that merely touch at an endpoint do not overlap.
func Overlaps(a, b Interval) bool {
	return math.Max(a.Start, b.Start) < math.Min(a.End, b.End)
}

// NormalizeHour wraps an hour value onto the [0, 24) circle
func NormalizeHour(h float64) float64 {
	return math.Mod(math.Mod(h, 24)+24, 24)
}

// WindowDuration returns the length in hours of a recurring UTC window.
// A window whose end is below its start wraps past midnight.
// start == end yields zero (an empty window).
func WindowDuration(startUTC, endUTC float64) float64 {
	if endUTC >= startUTC {
		return endUTC - startUTC
	}
	return (24 - startUTC) + endUTC
}

// LocalIntervals converts a recurring UTC window into its concrete local-time
// sub-intervals for one day, given the zone's offset from UTC in hours
// (fractional quarter-hour offsets are fine). A window that wraps midnight in
// the local frame comes back as two pieces, split at 0/24.
func LocalIntervals(startUTC, endUTC, offsetHours float64) []Interval {
	duration := WindowDuration(startUTC, endUTC)
	if duration == 0 {
		return nil
	}
	if duration >= 24 {
		return []Interval{{Start: 0, End: 24}}
	}

	localStart := NormalizeHour(startUTC + offsetHours)
	localEnd := NormalizeHour(localStart + duration)

	// Wrapped exactly back onto itself: open all day
	if localStart == localEnd {
		return []Interval{{Start: 0, End: 24}}
	}
	if localStart < localEnd {
		return []Interval{{Start: localStart, End: localEnd}}
	}
	return []Interval{
		{Start: localStart, End: 24},
		{Start: 0, End: localEnd},
	}
}

// LocalIntervals returns the session's window in the local frame of the
// given UTC offset.
func (s Session) LocalIntervals(offsetHours float64) []Interval {
	return LocalIntervals(float64(s.UTCStartHour), float64(s.UTCEndHour), offsetHours)
}

// WindowDuration returns the session's daily duration in hours
func (s Session) WindowDuration() float64 {
	return WindowDuration(float64(s.UTCStartHour), float64(s.UTCEndHour))
}
