// Package tz resolves zone identifiers against the platform timezone
// database. All session arithmetic stays in UTC; these lookups exist for
// display conversion only.
package tz

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"horae/internal/domain"
	"horae/internal/ports"
)

// Resolver implements ports.ZoneResolver using time.LoadLocation
type Resolver struct {
	mu    sync.Mutex
	cache map[string]*time.Location
}

// Verify interface compliance at compile time
var _ ports.ZoneResolver = (*Resolver)(nil)

// NewResolver creates a Resolver with an empty location cache
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]*time.Location)}
}

// Resolve maps a stored zone value to the effective zone name for display.
// The "local" sentinel resolves to the platform-detected zone, falling back
// to UTC when the platform offers no usable name.
func (r *Resolver) Resolve(zone string) string {
	if zone != "" && zone != domain.LocalZoneSentinel {
		return zone
	}
	if tzEnv := os.Getenv("TZ"); tzEnv != "" {
		return tzEnv
	}
	if name := time.Local.String(); name != "" {
		return name
	}
	return "UTC"
}

// OffsetHours returns the zone's civil offset from UTC at the given instant,
// rounded to the nearest quarter hour. Direct zone lookup; no
// format-and-diff fallback is needed with a real timezone database.
func (r *Resolver) OffsetHours(zone string, at time.Time) (float64, error) {
	loc, err := r.location(zone)
	if err != nil {
		return 0, err
	}
	_, offsetSeconds := at.In(loc).Zone()
	hours := float64(offsetSeconds) / 3600
	return math.Round(hours*4) / 4, nil
}

// FormatClock renders the instant as a zero-padded 24-hour HH:MM string in
// the zone.
func (r *Resolver) FormatClock(zone string, at time.Time) (string, error) {
	loc, err := r.location(zone)
	if err != nil {
		return "", err
	}
	return at.In(loc).Format("15:04"), nil
}

// Weekday returns the local calendar weekday of the instant in the zone
func (r *Resolver) Weekday(zone string, at time.Time) (time.Weekday, error) {
	loc, err := r.location(zone)
	if err != nil {
		return time.Sunday, err
	}
	return at.In(loc).Weekday(), nil
}

func (r *Resolver) location(zone string) (*time.Location, error) {
	if zone == "" || zone == domain.LocalZoneSentinel {
		return time.Local, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if loc, ok := r.cache[zone]; ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", zone, err)
	}
	r.cache[zone] = loc
	return loc, nil
}
