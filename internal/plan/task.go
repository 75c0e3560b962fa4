package plan

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for recurrence dates.
const DateLayout = "2006-01-02"

// Task is one unit of schedulable care work.
//
// SubjectName is stamped when the task is attached to a Subject.
// NextDue is set only on tasks spawned by recurrence rollover, never on the
// task that was just completed.
type Task struct {
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Duration    int       `json:"duration_minutes"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description,omitempty"`
	TimeOfDay   TimeOfDay `json:"time_preference,omitempty"`
	SubjectName string    `json:"subject,omitempty"`
	Frequency   Frequency `json:"frequency,omitempty"`
	NextDue     string    `json:"next_due_date,omitempty"`
}

// Validate enforces the closed enums and the positive-duration invariant.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("task %q: unknown category %q", t.Title, string(t.Category))
	}
	if t.Duration <= 0 {
		return fmt.Errorf("task %q: duration must be positive, got %d", t.Title, t.Duration)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %q: unknown priority %d", t.Title, int(t.Priority))
	}
	if _, err := ParseTimeOfDay(string(t.TimeOfDay)); err != nil {
		return fmt.Errorf("task %q: %w", t.Title, err)
	}
	if _, err := ParseFrequency(string(t.Frequency)); err != nil {
		return fmt.Errorf("task %q: %w", t.Title, err)
	}
	return nil
}

func (t *Task) IsHighPriority() bool { return t.Priority == PriorityHigh }

func (t *Task) IsFlexible() bool { return t.TimeOfDay == TimeFlexible }

// NextOccurrence spawns the follow-up task for a recurring task completed on
// the given date (YYYY-MM-DD). One-shot tasks return nil with no error.
// Recurrence is plain calendar-day addition; no timezone handling.
func (t *Task) NextOccurrence(completionDate string) (*Task, error) {
	var days int
	switch t.Frequency {
	case FreqDaily:
		days = 1
	case FreqWeekly:
		days = 7
	default:
		return nil, nil
	}

	day, err := time.Parse(DateLayout, completionDate)
	if err != nil {
		return nil, fmt.Errorf("completion date %q: %w", completionDate, err)
	}

	next := *t
	next.NextDue = day.AddDate(0, 0, days).Format(DateLayout)
	return &next, nil
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (%dmin, %s)", t.Title, t.Duration, t.Priority)
}
