package storage

import (
	"encoding/json"
	"fmt"

	"horae/internal/domain"
)

func toRecord(s domain.Session) sessionRecord {
	return sessionRecord{
		ID:           s.ID,
		Name:         s.Name,
		Market:       s.Market,
		UTCStartHour: s.UTCStartHour,
		UTCEndHour:   s.UTCEndHour,
		Color:        s.Color,
	}
}

func toDomain(r sessionRecord) domain.Session {
	return domain.Session{
		ID:           r.ID,
		Name:         r.Name,
		Market:       r.Market,
		UTCStartHour: r.UTCStartHour,
		UTCEndHour:   r.UTCEndHour,
		Color:        r.Color,
	}
}

// encodeSessions marshals the session list into the persisted JSON array
func encodeSessions(sessions []domain.Session) ([]byte, error) {
	records := make([]sessionRecord, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, toRecord(s))
	}
	return json.Marshal(records)
}

// decodeSessions parses the persisted JSON array. A record without an id is
// a shape mismatch (pre-id era data): the whole payload is rejected so the
// caller can fall back to the default set.
func decodeSessions(data []byte) ([]domain.Session, error) {
	var records []sessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse session list: %w", err)
	}

	sessions := make([]domain.Session, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("session record %d has no id", i)
		}
		sessions = append(sessions, toDomain(r))
	}
	return sessions, nil
}
