package config

type Config struct {
	Logging LoggingConfig `json:"logging"`

	// Planner is the daily plan definition: the time budget and the
	// subjects (with their care tasks) competing for it.
	Planner PlannerConfig `json:"planner"`

	// Rollover controls the daemon-mode daily regeneration trigger.
	Rollover RolloverConfig `json:"rollover,omitempty"`

	// Storage controls the optional completion log. Omitted means disabled.
	Storage *StorageConfig `json:"storage,omitempty"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// PlannerConfig declares the planner and everything it owns. Subject names
// must be unique; duplicates are rejected at validation time.
type PlannerConfig struct {
	Name          string            `json:"name"`
	BudgetMinutes int               `json:"budget_minutes"`
	Preferences   map[string]string `json:"preferences,omitempty"`
	Subjects      []SubjectConfig   `json:"subjects,omitempty"`
}

type SubjectConfig struct {
	Name          string       `json:"name"`
	Species       string       `json:"species"`
	Age           int          `json:"age"`
	ActivityLevel string       `json:"activity_level,omitempty"`
	SpecialNeeds  []string     `json:"special_needs,omitempty"`
	Tasks         []TaskConfig `json:"tasks,omitempty"`
}

type TaskConfig struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        string `json:"priority"`
	Description     string `json:"description,omitempty"`
	TimePreference  string `json:"time_preference,omitempty"`
	Frequency       string `json:"frequency,omitempty"`
}

// RolloverConfig controls the daily regeneration trigger.
//
// At is HH:MM in the configured IANA timezone (default "09:00").
type RolloverConfig struct {
	Enabled     bool   `json:"enabled"`
	At          string `json:"at,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	HistorySize int    `json:"history_size,omitempty"`
}

// StorageConfig controls the optional completion log.
//
// Example:
//
//	"storage": { "driver": "file", "path": "./careplan_store" }
type StorageConfig struct {
	Driver      string `json:"driver"`
	Path        string `json:"path"`
	BusyTimeout string `json:"busy_timeout,omitempty"` // Go duration string (sqlite)
}
