package ports

import (
	"context"

	"horae/internal/domain"
)

// SessionReader loads the persisted session list
type SessionReader interface {
	LoadSessions(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter persists the full session list after every change
type SessionWriter interface {
	SaveSessions(ctx context.Context, sessions []domain.Session) error
}

// PreferenceStore reads and writes independently-keyed preference values.
// Values are raw JSON so they round-trip losslessly.
type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) ([]byte, bool, error)
	SetPreference(ctx context.Context, key string, value []byte) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	PreferenceStore
	Close() error
}
