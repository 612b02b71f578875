package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horae/internal/domain"
)

// fakeRepository is an in-memory ports.SessionRepository for service tests
type fakeRepository struct {
	sessions  []domain.Session
	prefs     map[string][]byte
	loadErr   error
	saveErr   error
	saveCount int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{prefs: map[string][]byte{}}
}

func (f *fakeRepository) LoadSessions(_ context.Context) ([]domain.Session, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.sessions, nil
}

func (f *fakeRepository) SaveSessions(_ context.Context, sessions []domain.Session) error {
	f.saveCount++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions = sessions
	return nil
}

func (f *fakeRepository) GetPreference(_ context.Context, key string) ([]byte, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	value, found := f.prefs[key]
	return value, found, nil
}

func (f *fakeRepository) SetPreference(_ context.Context, key string, value []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.prefs[key] = value
	return nil
}

func (f *fakeRepository) Close() error { return nil }

func TestSessionService_CreateAppendsAndPersists(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)
	ctx := context.Background()

	sessions := domain.DefaultSessions()
	updated, err := svc.Create(ctx, sessions, SessionDraft{
		Name: "Frankfurt", Market: "Europe", UTCStartHour: 7, UTCEndHour: 16, Color: "amber",
	})
	require.NoError(t, err)

	require.Len(t, updated, len(sessions)+1)
	created := updated[len(updated)-1]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Frankfurt", created.Name)
	assert.Equal(t, 1, repo.saveCount)
	// Input slice untouched
	assert.Len(t, sessions, len(domain.DefaultSessions()))
}

func TestSessionService_CreateDefaultsColor(t *testing.T) {
	svc := NewSessionService(newFakeRepository())

	updated, err := svc.Create(context.Background(), nil, SessionDraft{
		Name: "Zurich", Market: "Europe", UTCStartHour: 6, UTCEndHour: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SessionColorNames[0], updated[0].Color)
}

func TestSessionService_UpdateReplacesInPlace(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)
	sessions := domain.DefaultSessions()

	updated, err := svc.Update(context.Background(), sessions, sessions[1].ID, SessionDraft{
		Name: "Tokyo Extended", Market: "Asia", UTCStartHour: 0, UTCEndHour: 10, Color: "rose",
	})
	require.NoError(t, err)

	assert.Equal(t, sessions[1].ID, updated[1].ID)
	assert.Equal(t, "Tokyo Extended", updated[1].Name)
	assert.Equal(t, 10, updated[1].UTCEndHour)
	// Neighbors keep their position
	assert.Equal(t, sessions[0], updated[0])
	assert.Equal(t, sessions[2], updated[2])
}

func TestSessionService_UpdateUnknownID(t *testing.T) {
	svc := NewSessionService(newFakeRepository())
	sessions := domain.DefaultSessions()

	_, err := svc.Update(context.Background(), sessions, "missing", SessionDraft{
		Name: "Ghost", Market: "Nowhere", UTCStartHour: 1, UTCEndHour: 2,
	})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_DeleteRemovesMatching(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)
	sessions := domain.DefaultSessions()

	updated := svc.Delete(context.Background(), sessions, sessions[0].ID)
	require.Len(t, updated, len(sessions)-1)
	for _, s := range updated {
		assert.NotEqual(t, sessions[0].ID, s.ID)
	}
	assert.Equal(t, 1, repo.saveCount)
}

func TestSessionService_DeleteUnknownIDIsNoOp(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)
	sessions := domain.DefaultSessions()

	updated := svc.Delete(context.Background(), sessions, "missing")
	assert.Equal(t, sessions, updated)
	assert.Equal(t, 0, repo.saveCount)
}

func TestSessionService_ResetRestoresDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewSessionService(repo)

	updated := svc.Reset(context.Background())
	assert.Equal(t, domain.DefaultSessions(), updated)
	assert.Equal(t, 1, repo.saveCount)
}

func TestSessionService_SaveFailureKeepsInMemoryList(t *testing.T) {
	repo := newFakeRepository()
	repo.saveErr = errors.New("disk full")
	svc := NewSessionService(repo)

	updated, err := svc.Create(context.Background(), nil, SessionDraft{
		Name: "Frankfurt", Market: "Europe", UTCStartHour: 7, UTCEndHour: 16,
	})
	require.NoError(t, err)
	assert.Len(t, updated, 1)
}

func TestValidateDraft(t *testing.T) {
	existing := []domain.Session{
		{ID: "lon", Name: "London", Market: "Europe", UTCStartHour: 8, UTCEndHour: 17},
	}

	tests := []struct {
		name      string
		draft     SessionDraft
		excludeID string
		wantField string
	}{
		{
			name:      "missing name",
			draft:     SessionDraft{Market: "Europe", UTCStartHour: 1, UTCEndHour: 2},
			wantField: "name",
		},
		{
			name:      "blank name",
			draft:     SessionDraft{Name: "   ", Market: "Europe", UTCStartHour: 1, UTCEndHour: 2},
			wantField: "name",
		},
		{
			name:      "missing market",
			draft:     SessionDraft{Name: "Paris", UTCStartHour: 1, UTCEndHour: 2},
			wantField: "market",
		},
		{
			name:      "start hour out of range",
			draft:     SessionDraft{Name: "Paris", Market: "Europe", UTCStartHour: 24, UTCEndHour: 2},
			wantField: "start hour",
		},
		{
			name:      "negative end hour",
			draft:     SessionDraft{Name: "Paris", Market: "Europe", UTCStartHour: 1, UTCEndHour: -1},
			wantField: "end hour",
		},
		{
			name:      "equal start and end",
			draft:     SessionDraft{Name: "Paris", Market: "Europe", UTCStartHour: 9, UTCEndHour: 9},
			wantField: "end hour",
		},
		{
			name:      "duplicate name case insensitive",
			draft:     SessionDraft{Name: "london", Market: "Europe", UTCStartHour: 1, UTCEndHour: 2},
			wantField: "name",
		},
		{
			name:      "duplicate allowed when editing itself",
			draft:     SessionDraft{Name: "London", Market: "Europe", UTCStartHour: 8, UTCEndHour: 18},
			excludeID: "lon",
		},
		{
			name:  "valid draft",
			draft: SessionDraft{Name: "Paris", Market: "Europe", UTCStartHour: 7, UTCEndHour: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft, existing, tt.excludeID)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}
