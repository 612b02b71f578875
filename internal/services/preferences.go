package services

import (
	"context"
	"encoding/json"

	"horae/internal/domain"
	"horae/internal/logging"
	"horae/internal/ports"
)

// Preference keys mirror the browser-storage era so an imported database
// round-trips without migration.
const (
	prefKeyTheme       = "market-sessions-theme"
	prefKeyCompactMode = "market-sessions-compact-mode"
	prefKeyTimezone    = "market-sessions-timezone"
	prefKeyGoldenHours = "market-sessions-golden-hours"
	prefKeyMarketPulse = "market-sessions-market-pulse"
	prefKeySchedule    = "market-sessions-trading-schedule"
)

// PreferenceService loads and saves the display preferences. Each option is
// stored under its own key, so a corrupt value degrades only that option.
type PreferenceService struct {
	store ports.PreferenceStore
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(store ports.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Load assembles the preference set, starting from defaults and overlaying
// each stored key that decodes cleanly.
func (p *PreferenceService) Load(ctx context.Context) domain.Preferences {
	prefs := domain.DefaultPreferences()

	if v, ok := p.get(ctx, prefKeyTheme); ok {
		var theme string
		if json.Unmarshal(v, &theme) == nil && (theme == "dark" || theme == "light") {
			prefs.Theme = theme
		}
	}
	if v, ok := p.get(ctx, prefKeyCompactMode); ok {
		var compact bool
		if json.Unmarshal(v, &compact) == nil {
			prefs.CompactMode = compact
		}
	}
	if v, ok := p.get(ctx, prefKeyTimezone); ok {
		var zone string
		if json.Unmarshal(v, &zone) == nil && zone != "" {
			prefs.Timezone = zone
		}
	}
	if v, ok := p.get(ctx, prefKeyGoldenHours); ok {
		var golden bool
		if json.Unmarshal(v, &golden) == nil {
			prefs.ShowGoldenHours = golden
		}
	}
	if v, ok := p.get(ctx, prefKeyMarketPulse); ok {
		var pulse bool
		if json.Unmarshal(v, &pulse) == nil {
			prefs.ShowMarketPulse = pulse
		}
	}
	if v, ok := p.get(ctx, prefKeySchedule); ok {
		var schedule string
		if json.Unmarshal(v, &schedule) == nil {
			prefs.Schedule = domain.ParseTradingSchedule(schedule)
		}
	}
	return prefs
}

// Save writes every preference under its own key. Failures are logged and
// swallowed; the in-memory preferences stay in effect.
func (p *PreferenceService) Save(ctx context.Context, prefs domain.Preferences) {
	p.set(ctx, prefKeyTheme, prefs.Theme)
	p.set(ctx, prefKeyCompactMode, prefs.CompactMode)
	p.set(ctx, prefKeyTimezone, prefs.Timezone)
	p.set(ctx, prefKeyGoldenHours, prefs.ShowGoldenHours)
	p.set(ctx, prefKeyMarketPulse, prefs.ShowMarketPulse)
	p.set(ctx, prefKeySchedule, string(prefs.Schedule))
}

func (p *PreferenceService) get(ctx context.Context, key string) ([]byte, bool) {
	value, found, err := p.store.GetPreference(ctx, key)
	if err != nil {
		logging.Logger.Warn("Failed to read preference", "key", key, "error", err)
		return nil, false
	}
	return value, found
}

func (p *PreferenceService) set(ctx context.Context, key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		logging.Logger.Error("Failed to encode preference", "key", key, "error", err)
		return
	}
	if err := p.store.SetPreference(ctx, key, encoded); err != nil {
		logging.Logger.Error("Failed to persist preference", "key", key, "error", err)
	}
}
