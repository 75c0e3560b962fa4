package storage

// Package storage provides the optional completion log.
//
// It records mark-complete decisions only; the schedule itself is never
// persisted and is rebuilt from scratch on every generation cycle.
