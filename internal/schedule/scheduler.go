package schedule

import (
	"fmt"
	"sort"

	"careplan/internal/plan"
	"careplan/pkg/logx"
)

// Entry pairs a task with its assigned start-time label. The ordered entry
// slice IS the schedule; it lives for one generation cycle only.
type Entry struct {
	Task  *plan.Task
	Start string
}

// completionKey scopes completion to (subject, title) so same-titled tasks
// owned by different subjects never conflate.
type completionKey struct {
	subject string
	title   string
}

// Scheduler produces and tracks a single day's schedule for one planner.
//
// Not safe for concurrent mutation: Generate and MarkComplete must be
// serialized by the caller; read queries may run concurrently against a
// stable, already-generated snapshot.
type Scheduler struct {
	planner *plan.Planner
	log     logx.Logger

	entries   []Entry
	completed map[completionKey]struct{}
	totalMin  int
	reasoning []string
}

func New(planner *plan.Planner, log logx.Logger) *Scheduler {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Scheduler{
		planner:   planner,
		log:       log,
		completed: map[completionKey]struct{}{},
	}
}

func (s *Scheduler) Planner() *plan.Planner { return s.planner }

// Generate rebuilds the schedule from scratch: flatten all subjects' tasks,
// stable-sort by (priority desc, morning-first, duration asc), then place
// greedily from the 9:00 AM anchor while the daily budget allows. Rejected
// tasks are not retried and never advance the clock.
func (s *Scheduler) Generate() []Entry {
	s.entries = nil
	s.completed = map[completionKey]struct{}{}
	s.totalMin = 0
	s.reasoning = nil

	var all []*plan.Task
	for _, sub := range s.planner.Subjects() {
		all = append(all, sub.Tasks()...)
	}
	if len(all) == 0 {
		s.say("No tasks to schedule.")
		s.log.Debug("nothing to schedule", logx.String("planner", s.planner.Name))
		return nil
	}

	prioritize(all)

	cursor := dayStart
	remaining := s.planner.BudgetMinutes

	s.say("Starting schedule at %s", Label(cursor))
	s.say("Daily budget is %d minutes", remaining)

	for _, t := range all {
		if t.Duration <= remaining {
			start := Label(cursor)
			s.entries = append(s.entries, Entry{Task: t, Start: start})
			remaining -= t.Duration
			cursor += t.Duration
			s.totalMin += t.Duration
			s.say("scheduled %s for %s at %s (%dmin, %s priority)",
				t.Title, t.SubjectName, start, t.Duration, t.Priority)
		} else {
			s.say("skipped %s for %s (%dmin needed, only %dmin remaining)",
				t.Title, t.SubjectName, t.Duration, remaining)
		}
	}

	s.say("Total scheduled: %d minutes", s.totalMin)
	s.say("Remaining time: %d minutes", remaining)

	s.log.Info("schedule generated",
		logx.String("planner", s.planner.Name),
		logx.Int("tasks", len(all)),
		logx.Int("placed", len(s.entries)),
		logx.Int("scheduled_min", s.totalMin),
		logx.Int("remaining_min", remaining),
	)
	return s.Entries()
}

// prioritize stable-sorts in place. Ties on the full composite key keep the
// flattening order; stability is load-bearing for determinism.
func prioritize(tasks []*plan.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() > b.Priority.Weight()
		}
		// Morning-preferred first; evening and flexible share a bucket.
		ab, bb := timeBucket(a.TimeOfDay), timeBucket(b.TimeOfDay)
		if ab != bb {
			return ab < bb
		}
		return a.Duration < b.Duration
	})
}

func timeBucket(t plan.TimeOfDay) int {
	if t == plan.TimeMorning {
		return 0
	}
	return 1
}

// Entries returns the schedule in generation order. The slice is a copy.
func (s *Scheduler) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reasoning returns the human-readable accept/reject/complete trace.
func (s *Scheduler) Reasoning() []string {
	out := make([]string, len(s.reasoning))
	copy(out, s.reasoning)
	return out
}

func (s *Scheduler) TotalScheduledMinutes() int { return s.totalMin }

func (s *Scheduler) say(format string, args ...any) {
	s.reasoning = append(s.reasoning, fmt.Sprintf(format, args...))
}
