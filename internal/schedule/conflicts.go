package schedule

import "fmt"

// DetectConflicts reports overlaps between adjacent entry pairs in the
// current entry order. Only adjacent pairs are compared; overlaps between
// non-adjacent entries in an out-of-order list are not found. That
// limitation is intentional; do not swap in an all-pairs sweep here.
func (s *Scheduler) DetectConflicts() []string {
	var out []string
	for i := 0; i+1 < len(s.entries); i++ {
		a, b := s.entries[i], s.entries[i+1]
		am, err := ParseLabel(a.Start)
		if err != nil {
			continue
		}
		bm, err := ParseLabel(b.Start)
		if err != nil {
			continue
		}
		end := am + a.Task.Duration
		if bm < end {
			out = append(out, fmt.Sprintf(
				"Conflict: %s (%s, %dmin) overlaps %s (%s) by %dmin",
				a.Task.Title, a.Start, a.Task.Duration, b.Task.Title, b.Start, end-bm))
		}
	}
	return out
}
