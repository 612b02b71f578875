package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"horae/internal/domain"
	"horae/internal/logging"
	"horae/internal/ports"
)

// ValidationError is a field-level edit error, surfaced synchronously to the
// caller. It blocks the save but never reaches the derivation layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SessionService owns the session list lifecycle: load, create, update,
// delete, reset. The edit boundary validation lives here so the core
// computation never sees an invalid session. Persistence is best-effort:
// a failed write is logged and the in-memory list stays authoritative.
type SessionService struct {
	repo ports.SessionRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(repo ports.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Load returns the persisted session list; the repository already falls back
// to the default set on any read problem.
func (s *SessionService) Load(ctx context.Context) []domain.Session {
	sessions, err := s.repo.LoadSessions(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load sessions, using defaults", "error", err)
		return domain.DefaultSessions()
	}
	return sessions
}

// Create validates the draft against the current list, assigns a fresh id,
// appends and persists. Returns the updated list.
func (s *SessionService) Create(ctx context.Context, sessions []domain.Session, draft SessionDraft) ([]domain.Session, error) {
	if err := ValidateDraft(draft, sessions, ""); err != nil {
		return sessions, err
	}

	session := draftToSession(draft)
	session.ID = uuid.NewString()

	updated := append(append([]domain.Session{}, sessions...), session)
	s.persist(ctx, updated)
	logging.Logger.Info("Session created", "id", session.ID, "name", session.Name)
	return updated, nil
}

// Update validates the draft and replaces the session with the given id in
// place, keeping list order. Returns the updated list.
func (s *SessionService) Update(ctx context.Context, sessions []domain.Session, id string, draft SessionDraft) ([]domain.Session, error) {
	if err := ValidateDraft(draft, sessions, id); err != nil {
		return sessions, err
	}

	updated := make([]domain.Session, len(sessions))
	copy(updated, sessions)

	found := false
	for i := range updated {
		if updated[i].ID == id {
			session := draftToSession(draft)
			session.ID = id
			updated[i] = session
			found = true
			break
		}
	}
	if !found {
		return sessions, fmt.Errorf("update session %s: %w", id, domain.ErrSessionNotFound)
	}

	s.persist(ctx, updated)
	logging.Logger.Info("Session updated", "id", id, "name", draft.Name)
	return updated, nil
}

// Delete removes the session with the given id; deleting an unknown id is a
// no-op. Returns the updated list.
func (s *SessionService) Delete(ctx context.Context, sessions []domain.Session, id string) []domain.Session {
	updated := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.ID != id {
			updated = append(updated, session)
		}
	}
	if len(updated) != len(sessions) {
		s.persist(ctx, updated)
		logging.Logger.Info("Session deleted", "id", id)
	}
	return updated
}

// Reset replaces the whole list with the default set
func (s *SessionService) Reset(ctx context.Context) []domain.Session {
	defaults := domain.DefaultSessions()
	s.persist(ctx, defaults)
	logging.Logger.Info("Sessions reset to defaults")
	return defaults
}

// persist writes the full list after every change. Failures are logged and
// swallowed: the UI state wins for the remainder of the run.
func (s *SessionService) persist(ctx context.Context, sessions []domain.Session) {
	if err := s.repo.SaveSessions(ctx, sessions); err != nil {
		logging.Logger.Error("Failed to persist session list", "error", err)
	}
}

// ValidateDraft enforces the edit-boundary rules: non-empty name and market,
// hours within 0-23, distinct start and end, and a case-insensitively unique
// name. excludeID skips the session being edited in the uniqueness check.
func ValidateDraft(draft SessionDraft, existing []domain.Session, excludeID string) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &ValidationError{Field: "name", Message: "session name is required"}
	}
	if strings.TrimSpace(draft.Market) == "" {
		return &ValidationError{Field: "market", Message: "market is required"}
	}
	if draft.UTCStartHour < 0 || draft.UTCStartHour > 23 {
		return &ValidationError{Field: "start hour", Message: "hours must be between 0 and 23"}
	}
	if draft.UTCEndHour < 0 || draft.UTCEndHour > 23 {
		return &ValidationError{Field: "end hour", Message: "hours must be between 0 and 23"}
	}
	if draft.UTCStartHour == draft.UTCEndHour {
		return &ValidationError{Field: "end hour", Message: "start and end hours must differ"}
	}

	name := strings.ToLower(strings.TrimSpace(draft.Name))
	for _, session := range existing {
		if session.ID == excludeID {
			continue
		}
		if strings.ToLower(session.Name) == name {
			return &ValidationError{Field: "name", Message: "a session with this name already exists"}
		}
	}
	return nil
}

func draftToSession(draft SessionDraft) domain.Session {
	color := draft.Color
	if color == "" {
		color = domain.SessionColorNames[0]
	}
	return domain.Session{
		Name:         strings.TrimSpace(draft.Name),
		Market:       strings.TrimSpace(draft.Market),
		UTCStartHour: draft.UTCStartHour,
		UTCEndHour:   draft.UTCEndHour,
		Color:        color,
	}
}
