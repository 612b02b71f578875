package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horae/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestLoadSessions_EmptyStoreReturnsDefaults(t *testing.T) {
	repo := newTestRepository(t)

	sessions, err := repo.LoadSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSessions(), sessions)
}

func TestSaveLoadSessions_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved := []domain.Session{
		{ID: "fra", Name: "Frankfurt", Market: "Europe", UTCStartHour: 7, UTCEndHour: 16, Color: "amber"},
		{ID: "syd", Name: "Sydney", Market: "Australia", UTCStartHour: 22, UTCEndHour: 7, Color: "violet"},
	}

	require.NoError(t, repo.SaveSessions(ctx, saved))

	loaded, err := repo.LoadSessions(ctx)
	require.NoError(t, err)
	// Same ids, same field values, same order
	assert.Equal(t, saved, loaded)
}

func TestSaveSessions_OverwritesPreviousList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSessions(ctx, domain.DefaultSessions()))
	require.NoError(t, repo.SaveSessions(ctx, []domain.Session{
		{ID: "only", Name: "Only", Market: "Test", UTCStartHour: 1, UTCEndHour: 2, Color: "sky"},
	}))

	loaded, err := repo.LoadSessions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "only", loaded[0].ID)
}

func TestLoadSessions_MalformedDataFallsBackToDefaults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.set(ctx, sessionsKey, []byte("{not json")))

	sessions, err := repo.LoadSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSessions(), sessions)
}

func TestLoadSessions_RecordWithoutIDFallsBackToDefaults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Pre-id era payload: valid JSON but shape mismatch
	legacy := []byte(`[{"name":"London","market":"Europe","utcStartHour":8,"utcEndHour":17,"color":"cyan"}]`)
	require.NoError(t, repo.set(ctx, sessionsKey, legacy))

	sessions, err := repo.LoadSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSessions(), sessions)
}

func TestPreferences_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, found, err := repo.GetPreference(ctx, "market-sessions-theme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetPreference(ctx, "market-sessions-theme", []byte(`"light"`)))

	value, found, err := repo.GetPreference(ctx, "market-sessions-theme")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"light"`, string(value))

	// Overwrite keeps a single value per key
	require.NoError(t, repo.SetPreference(ctx, "market-sessions-theme", []byte(`"dark"`)))
	value, _, err = repo.GetPreference(ctx, "market-sessions-theme")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(value))
}
