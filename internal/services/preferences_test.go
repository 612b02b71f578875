package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"horae/internal/domain"
)

func TestPreferenceService_LoadEmptyStoreReturnsDefaults(t *testing.T) {
	svc := NewPreferenceService(newFakeRepository())

	assert.Equal(t, domain.DefaultPreferences(), svc.Load(context.Background()))
}

func TestPreferenceService_RoundTrip(t *testing.T) {
	svc := NewPreferenceService(newFakeRepository())
	ctx := context.Background()

	saved := domain.Preferences{
		CompactMode:     true,
		Schedule:        domain.ScheduleContinuous,
		ShowGoldenHours: false,
		ShowMarketPulse: false,
		Theme:           "light",
		Timezone:        "Asia/Tokyo",
	}
	svc.Save(ctx, saved)

	assert.Equal(t, saved, svc.Load(ctx))
}

func TestPreferenceService_CorruptValueDegradesThatOptionOnly(t *testing.T) {
	repo := newFakeRepository()
	repo.prefs[prefKeyTheme] = []byte("{not json")
	repo.prefs[prefKeyTimezone] = []byte(`"Europe/Berlin"`)
	svc := NewPreferenceService(repo)

	prefs := svc.Load(context.Background())
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, "Europe/Berlin", prefs.Timezone)
}

func TestPreferenceService_UnknownThemeKeepsDefault(t *testing.T) {
	repo := newFakeRepository()
	repo.prefs[prefKeyTheme] = []byte(`"sepia"`)
	svc := NewPreferenceService(repo)

	assert.Equal(t, "dark", svc.Load(context.Background()).Theme)
}

func TestPreferenceService_UnknownScheduleFallsBackToWeekdays(t *testing.T) {
	repo := newFakeRepository()
	repo.prefs[prefKeySchedule] = []byte(`"sometimes"`)
	svc := NewPreferenceService(repo)

	assert.Equal(t, domain.ScheduleWeekdays, svc.Load(context.Background()).Schedule)
}
