package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	winter = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
)

func TestOffsetHours_KnownZones(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		at       time.Time
		expected float64
	}{
		{"UTC", "UTC", winter, 0},
		{"New York standard time", "America/New_York", winter, -5},
		{"New York daylight time", "America/New_York", summer, -4},
		{"Tokyo", "Asia/Tokyo", winter, 9},
		{"Kathmandu quarter-hour offset", "Asia/Kathmandu", winter, 5.75},
		{"India half-hour offset", "Asia/Kolkata", winter, 5.5},
	}

	resolver := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, err := resolver.OffsetHours(tt.zone, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, offset)
		})
	}
}

func TestOffsetHours_InvalidZone(t *testing.T) {
	resolver := NewResolver()

	_, err := resolver.OffsetHours("Mars/Olympus_Mons", winter)
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	resolver := NewResolver()

	clock, err := resolver.FormatClock("Asia/Tokyo", winter)
	require.NoError(t, err)
	assert.Equal(t, "21:00", clock)

	clock, err = resolver.FormatClock("UTC", time.Date(2024, time.January, 15, 7, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "07:05", clock)
}

func TestWeekday_CrossesDateLine(t *testing.T) {
	resolver := NewResolver()

	// Friday 23:00 UTC is already Saturday in Sydney
	fridayNight := time.Date(2024, time.March, 8, 23, 0, 0, 0, time.UTC)

	utcDay, err := resolver.Weekday("UTC", fridayNight)
	require.NoError(t, err)
	assert.Equal(t, time.Friday, utcDay)

	sydneyDay, err := resolver.Weekday("Australia/Sydney", fridayNight)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, sydneyDay)
}

func TestResolve_PassthroughAndSentinel(t *testing.T) {
	resolver := NewResolver()

	assert.Equal(t, "Europe/Berlin", resolver.Resolve("Europe/Berlin"))
	assert.NotEmpty(t, resolver.Resolve("local"))
	assert.NotEmpty(t, resolver.Resolve(""))
}
