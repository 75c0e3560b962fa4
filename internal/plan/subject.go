package plan

// Subject is an entity requiring care. It owns its tasks; every owned task
// carries this subject's name.
type Subject struct {
	Name          string   `json:"name"`
	Species       string   `json:"species"`
	Age           int      `json:"age"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	SpecialNeeds  []string `json:"special_needs,omitempty"`

	tasks []*Task
}

// NewSubject allocates an independent task list per subject (no shared
// backing slice across instances).
func NewSubject(name, species string, age int) *Subject {
	return &Subject{
		Name:         name,
		Species:      species,
		Age:          age,
		SpecialNeeds: []string{},
		tasks:        []*Task{},
	}
}

// AddTask validates the task and transfers ownership: the subject's name is
// stamped onto it.
func (s *Subject) AddTask(t *Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.SubjectName = s.Name
	s.tasks = append(s.tasks, t)
	return nil
}

// RemoveTask removes the first task with the given title. Returns false when
// no task matches.
func (s *Subject) RemoveTask(title string) bool {
	for i, t := range s.tasks {
		if t.Title == title {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Tasks returns the owned tasks in insertion order. The slice is a copy.
func (s *Subject) Tasks() []*Task {
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TasksByPriority filters by tier name ("low", "medium", "high"). An unknown
// tier is a validation error.
func (s *Subject) TasksByPriority(tier string) ([]*Task, error) {
	p, err := ParsePriority(tier)
	if err != nil {
		return nil, err
	}
	var out []*Task
	for _, t := range s.tasks {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Subject) HighPriorityTasks() []*Task {
	var out []*Task
	for _, t := range s.tasks {
		if t.IsHighPriority() {
			out = append(out, t)
		}
	}
	return out
}

// TotalCareMinutes sums all owned task durations.
func (s *Subject) TotalCareMinutes() int {
	sum := 0
	for _, t := range s.tasks {
		sum += t.Duration
	}
	return sum
}
