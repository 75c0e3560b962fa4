package schedule

import (
	"time"

	"careplan/internal/plan"
	"careplan/pkg/logx"
)

// Completion describes one successful MarkComplete call. NextDue is set only
// when a recurrence follow-up was spawned.
type Completion struct {
	Subject string
	Title   string
	Start   string
	Date    string
	NextDue string
}

// MarkComplete marks the first schedule entry with the given title as done.
// completionDate is YYYY-MM-DD; empty means today. An unknown title is a
// no-op returning ok=false, never an error.
//
// When the underlying task recurs, the next occurrence is appended to the
// owning subject's task list. It does not join the current schedule; it only
// shows up in a future Generate.
func (s *Scheduler) MarkComplete(title, completionDate string) (Completion, bool) {
	for _, e := range s.entries {
		if e.Task.Title != title {
			continue
		}
		if completionDate == "" {
			completionDate = time.Now().Format(plan.DateLayout)
		}
		s.completed[completionKey{subject: e.Task.SubjectName, title: e.Task.Title}] = struct{}{}
		s.say("completed %s at %s", e.Task.Title, e.Start)

		c := Completion{
			Subject: e.Task.SubjectName,
			Title:   e.Task.Title,
			Start:   e.Start,
			Date:    completionDate,
		}
		c.NextDue = s.rollover(e.Task, completionDate)
		return c, true
	}
	return Completion{}, false
}

// rollover spawns the recurrence follow-up, if any, and returns its due date.
func (s *Scheduler) rollover(t *plan.Task, completionDate string) string {
	next, err := t.NextOccurrence(completionDate)
	if err != nil {
		s.log.Warn("recurrence rollover failed",
			logx.String("task", t.Title), logx.Err(err))
		return ""
	}
	if next == nil {
		return ""
	}
	sub, ok := s.planner.Subject(t.SubjectName)
	if !ok {
		s.log.Warn("recurrence rollover dropped: owning subject removed",
			logx.String("task", t.Title), logx.String("subject", t.SubjectName))
		return ""
	}
	if err := sub.AddTask(next); err != nil {
		s.log.Warn("recurrence rollover rejected",
			logx.String("task", t.Title), logx.Err(err))
		return ""
	}
	s.log.Debug("recurrence spawned",
		logx.String("task", next.Title),
		logx.String("subject", next.SubjectName),
		logx.String("next_due", next.NextDue),
	)
	return next.NextDue
}

// IsComplete reports whether any entry with the given title has been marked
// complete.
func (s *Scheduler) IsComplete(title string) bool {
	for k := range s.completed {
		if k.title == title {
			return true
		}
	}
	return false
}

func (s *Scheduler) entryComplete(e Entry) bool {
	_, ok := s.completed[completionKey{subject: e.Task.SubjectName, title: e.Task.Title}]
	return ok
}
