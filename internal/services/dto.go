package services

import "horae/internal/domain"

// SessionDetails is the derived per-session view model: recomputed on every
// tick, consumed by the presentation layer, never persisted.
type SessionDetails struct {
	domain.Session

	Status         domain.SessionStatus
	Countdown      string
	LocalOpenTime  string
	LocalCloseTime string

	// IsOverlapping is only meaningful while Status is an open variant
	IsOverlapping bool
}

// SessionDraft carries the editable fields of a session through the edit
// boundary (form or CLI) before an id is attached.
type SessionDraft struct {
	Color        string
	Market       string
	Name         string
	UTCEndHour   int
	UTCStartHour int
}
