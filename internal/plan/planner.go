package plan

// Planner holds the daily time budget and the subjects competing for it.
//
// Subject names are assumed unique within a planner; uniqueness is the
// caller's responsibility before AddSubject.
type Planner struct {
	Name          string            `json:"name"`
	BudgetMinutes int               `json:"budget_minutes"`
	Preferences   map[string]string `json:"preferences,omitempty"`

	subjects []*Subject
}

func NewPlanner(name string, budgetMinutes int) *Planner {
	return &Planner{
		Name:          name,
		BudgetMinutes: budgetMinutes,
		Preferences:   map[string]string{},
		subjects:      []*Subject{},
	}
}

func (p *Planner) AddSubject(s *Subject) {
	p.subjects = append(p.subjects, s)
}

// RemoveSubject removes the first subject with the given name. Returns false
// when no subject matches.
func (p *Planner) RemoveSubject(name string) bool {
	for i, s := range p.subjects {
		if s.Name == name {
			p.subjects = append(p.subjects[:i], p.subjects[i+1:]...)
			return true
		}
	}
	return false
}

// Subject looks up a subject by name.
func (p *Planner) Subject(name string) (*Subject, bool) {
	for _, s := range p.subjects {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Subjects returns the owned subjects in insertion order. The slice is a copy.
func (p *Planner) Subjects() []*Subject {
	out := make([]*Subject, len(p.subjects))
	copy(out, p.subjects)
	return out
}

// HasTimeFor reports whether a task of the given duration fits the full
// daily budget.
func (p *Planner) HasTimeFor(durationMinutes int) bool {
	return durationMinutes <= p.BudgetMinutes
}
