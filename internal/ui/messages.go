package ui

import "time"

// tickMsg carries the wall-clock sample for one derivation pass. Every
// derived value in a frame comes from this single instant.
type tickMsg time.Time
