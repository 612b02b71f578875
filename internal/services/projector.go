package services

import (
	"time"

	"horae/internal/domain"
	"horae/internal/logging"
	"horae/internal/ports"
)

// Projector derives the dashboard view models for one instant. All methods
// are pure given their inputs and the zone database; "now" is sampled once
// per tick by the caller and held fixed through a whole derivation pass.
type Projector struct {
	zones ports.ZoneResolver
}

// NewProjector creates a Projector backed by the given zone resolver
func NewProjector(zones ports.ZoneResolver) *Projector {
	return &Projector{zones: zones}
}

// Project computes the per-session details for the given instant, timezone
// and schedule. Under the weekdays-only schedule a weekend day (in the
// effective zone) short-circuits to an empty list. Results keep the input
// session order.
func (p *Projector) Project(sessions []domain.Session, now time.Time, zone string, schedule domain.TradingSchedule) []SessionDetails {
	weekday, err := p.zones.Weekday(zone, now)
	if err != nil {
		logging.Logger.Warn("Weekday lookup failed, using UTC", "zone", zone, "error", err)
		weekday = now.UTC().Weekday()
	}
	if !schedule.IsTradingDay(weekday) {
		return nil
	}

	offset := p.OffsetHours(zone, now)

	// Per-minute coverage across all sessions, open or not; drives the
	// per-session overlap flag
	counts := domain.MinuteCounts(localIntervals(sessions, offset))
	nowMinute := int(LocalNowHour(now, offset)*60) % domain.MinutesPerDay

	details := make([]SessionDetails, 0, len(sessions))
	for _, session := range sessions {
		occ := session.Occurrence(now)
		status, countdown := domain.ResolveStatus(now, occ)

		details = append(details, SessionDetails{
			Session:        session,
			Status:         status,
			Countdown:      countdown,
			LocalOpenTime:  p.clock(zone, occ.Open),
			LocalCloseTime: p.clock(zone, occ.Close),
			IsOverlapping:  status.IsOpen() && counts[nowMinute] > 1,
		})
	}
	return details
}

// GoldenHours returns the local-time ranges where two or more currently-open
// sessions trade at once.
func (p *Projector) GoldenHours(details []SessionDetails, offsetHours float64) []domain.Interval {
	var open []domain.Interval
	for _, d := range details {
		if d.Status.IsOpen() {
			open = append(open, d.LocalIntervals(offsetHours)...)
		}
	}
	return domain.FindRanges(open, 1)
}

// OffsetHours returns the zone's offset at the instant; a failed lookup
// degrades to UTC so the derivation keeps running.
func (p *Projector) OffsetHours(zone string, now time.Time) float64 {
	offset, err := p.zones.OffsetHours(zone, now)
	if err != nil {
		logging.Logger.Warn("Offset lookup failed, using UTC", "zone", zone, "error", err)
		return 0
	}
	return offset
}

// LocalNowHour maps an instant to its fractional hour on the local 24h
// circle for the given offset.
func LocalNowHour(now time.Time, offsetHours float64) float64 {
	utc := now.UTC()
	hour := float64(utc.Hour()) + float64(utc.Minute())/60
	return domain.NormalizeHour(hour + offsetHours)
}

func (p *Projector) clock(zone string, at time.Time) string {
	formatted, err := p.zones.FormatClock(zone, at)
	if err != nil {
		return "N/A"
	}
	return formatted
}

func localIntervals(sessions []domain.Session, offsetHours float64) []domain.Interval {
	var all []domain.Interval
	for _, s := range sessions {
		all = append(all, s.LocalIntervals(offsetHours)...)
	}
	return all
}
