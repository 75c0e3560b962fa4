package schedule

import "sort"

// SortByTime returns a new view of the schedule ordered by parsed start time
// ascending. The canonical generation order is not mutated. Entries whose
// label fails to parse sort last, keeping their relative order.
func (s *Scheduler) SortByTime() []Entry {
	out := s.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return entryMinutes(out[i]) < entryMinutes(out[j])
	})
	return out
}

func entryMinutes(e Entry) int {
	m, err := ParseLabel(e.Start)
	if err != nil {
		return 1 << 30
	}
	return m
}

// FilterBySubject returns the entries owned by the named subject.
func (s *Scheduler) FilterBySubject(name string) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Task.SubjectName == name {
			out = append(out, e)
		}
	}
	return out
}

// FilterByStatus returns entries by completion status.
func (s *Scheduler) FilterByStatus(completed bool) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if s.entryComplete(e) == completed {
			out = append(out, e)
		}
	}
	return out
}

// Remaining returns the scheduled entries not yet marked complete.
func (s *Scheduler) Remaining() []Entry {
	return s.FilterByStatus(false)
}
