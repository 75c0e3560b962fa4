package storage

import (
	"errors"
	"time"
)

var ErrDisabled = errors.New("storage disabled")

// Config configures storage.
//
// Driver values:
//   - "file": dependency-free file backend (append-only jsonl)
//   - "sqlite": SQLite database file (optional build tag)
//
// If Driver is empty or "none", storage is disabled.
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// CompletionEntry records one mark-complete decision.
// Keep it compact and schema-stable.
type CompletionEntry struct {
	At          time.Time `json:"at"`
	Planner     string    `json:"planner"`
	Subject     string    `json:"subject"`
	Title       string    `json:"title"`
	Start       string    `json:"start"`
	CompletedOn string    `json:"completed_on"`
	NextDue     string    `json:"next_due,omitempty"`
}
