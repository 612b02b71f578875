package domain

import "errors"

// ErrSessionNotFound is returned when an operation references a session id
// that is not in the list.
var ErrSessionNotFound = errors.New("session not found")
