package config

import (
	"fmt"

	"careplan/internal/plan"
)

// BuildPlanner materializes the configured planner. Enum strings are parsed
// eagerly; any unknown value or invariant violation fails the build (and so
// fails config validation before a hot reload commits).
func BuildPlanner(pc PlannerConfig) (*plan.Planner, error) {
	if pc.BudgetMinutes < 0 {
		return nil, fmt.Errorf("planner.budget_minutes must be >= 0, got %d", pc.BudgetMinutes)
	}

	p := plan.NewPlanner(pc.Name, pc.BudgetMinutes)
	for k, v := range pc.Preferences {
		p.Preferences[k] = v
	}

	seen := map[string]bool{}
	for _, sc := range pc.Subjects {
		if sc.Name == "" {
			return nil, fmt.Errorf("planner.subjects: subject name is required")
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("planner.subjects: duplicate subject %q", sc.Name)
		}
		seen[sc.Name] = true

		sub := plan.NewSubject(sc.Name, sc.Species, sc.Age)
		sub.ActivityLevel = sc.ActivityLevel
		sub.SpecialNeeds = append(sub.SpecialNeeds, sc.SpecialNeeds...)

		for _, tc := range sc.Tasks {
			t, err := buildTask(tc)
			if err != nil {
				return nil, fmt.Errorf("subject %q: %w", sc.Name, err)
			}
			if err := sub.AddTask(t); err != nil {
				return nil, fmt.Errorf("subject %q: %w", sc.Name, err)
			}
		}
		p.AddSubject(sub)
	}
	return p, nil
}

func buildTask(tc TaskConfig) (*plan.Task, error) {
	cat, err := plan.ParseCategory(tc.Category)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", tc.Title, err)
	}
	prio, err := plan.ParsePriority(tc.Priority)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", tc.Title, err)
	}
	tod, err := plan.ParseTimeOfDay(tc.TimePreference)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", tc.Title, err)
	}
	freq, err := plan.ParseFrequency(tc.Frequency)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", tc.Title, err)
	}
	return &plan.Task{
		Title:       tc.Title,
		Category:    cat,
		Duration:    tc.DurationMinutes,
		Priority:    prio,
		Description: tc.Description,
		TimeOfDay:   tod,
		Frequency:   freq,
	}, nil
}

// Validate checks the whole config the way Watch() does before committing:
// the planner must build and every duration/clock field must parse.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := BuildPlanner(cfg.Planner); err != nil {
		return err
	}
	if cfg.Rollover.Enabled {
		if _, _, err := ParseHHMM(rolloverAt(cfg.Rollover)); err != nil {
			return fmt.Errorf("rollover.at: %w", err)
		}
	}
	if cfg.Storage != nil {
		if _, err := ParseDurationField("storage.busy_timeout", cfg.Storage.BusyTimeout); err != nil {
			return err
		}
	}
	return nil
}

func rolloverAt(rc RolloverConfig) string {
	if rc.At == "" {
		return "09:00"
	}
	return rc.At
}

// RolloverAt returns the effective HH:MM trigger time.
func RolloverAt(rc RolloverConfig) string { return rolloverAt(rc) }
