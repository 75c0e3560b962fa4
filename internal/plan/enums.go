package plan

import "fmt"

// Category classifies a care task.
type Category string

const (
	CategoryMovement   Category = "movement"
	CategoryFeeding    Category = "feeding"
	CategoryMedical    Category = "medical"
	CategoryEnrichment Category = "enrichment"
	CategoryGrooming   Category = "grooming"
)

var validCategories = map[Category]bool{
	CategoryMovement:   true,
	CategoryFeeding:    true,
	CategoryMedical:    true,
	CategoryEnrichment: true,
	CategoryGrooming:   true,
}

// ParseCategory rejects unknown category strings eagerly.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !validCategories[c] {
		return "", fmt.Errorf("unknown category %q (want movement, feeding, medical, enrichment or grooming)", s)
	}
	return c, nil
}

func (c Category) Valid() bool { return validCategories[c] }

// Priority orders tasks. The numeric weight is the comparison key:
// HIGH (3) schedules before MEDIUM (2) before LOW (1).
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// ParsePriority maps a tier name to its Priority. Unknown tiers are a
// validation error, never a silent fallthrough.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "low", "LOW":
		return PriorityLow, nil
	case "medium", "MEDIUM":
		return PriorityMedium, nil
	case "high", "HIGH":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (want low, medium or high)", s)
	}
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Weight returns the numeric ordering value (1-3).
func (p Priority) Weight() int { return int(p) }

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// TimeOfDay is an optional scheduling preference. Empty means flexible.
type TimeOfDay string

const (
	TimeFlexible TimeOfDay = ""
	TimeMorning  TimeOfDay = "morning"
	TimeEvening  TimeOfDay = "evening"
)

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	switch TimeOfDay(s) {
	case TimeFlexible, TimeMorning, TimeEvening:
		return TimeOfDay(s), nil
	default:
		return "", fmt.Errorf("unknown time preference %q (want morning, evening or empty)", s)
	}
}

// Frequency is an optional recurrence. Empty means one-shot.
type Frequency string

const (
	FreqNone   Frequency = ""
	FreqDaily  Frequency = "daily"
	FreqWeekly Frequency = "weekly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FreqNone, FreqDaily, FreqWeekly:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("unknown frequency %q (want daily, weekly or empty)", s)
	}
}
