package plan

import "testing"

func TestSubjectAddTaskStampsOwner(t *testing.T) {
	t.Parallel()
	s := NewSubject("Buddy", "dog", 3)
	task := validTask()
	if err := s.AddTask(task); err != nil {
		t.Fatalf("AddTask error: %v", err)
	}
	if task.SubjectName != "Buddy" {
		t.Fatalf("SubjectName = %q, want Buddy", task.SubjectName)
	}
	if got := len(s.Tasks()); got != 1 {
		t.Fatalf("Tasks() length = %d, want 1", got)
	}
}

func TestSubjectAddTaskRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := NewSubject("Buddy", "dog", 3)
	bad := validTask()
	bad.Duration = 0
	if err := s.AddTask(bad); err == nil {
		t.Fatal("expected validation error")
	}
	if got := len(s.Tasks()); got != 0 {
		t.Fatalf("invalid task was stored, Tasks() length = %d", got)
	}
}

func TestSubjectRemoveTask(t *testing.T) {
	t.Parallel()
	s := NewSubject("Buddy", "dog", 3)
	a := validTask()
	b := validTask()
	b.Title = "Dinner"
	b.Category = CategoryFeeding
	_ = s.AddTask(a)
	_ = s.AddTask(b)

	if !s.RemoveTask("Morning Walk") {
		t.Fatal("RemoveTask returned false for an existing title")
	}
	if s.RemoveTask("Morning Walk") {
		t.Fatal("RemoveTask returned true for an already-removed title")
	}
	if s.RemoveTask("Nope") {
		t.Fatal("RemoveTask returned true for an unknown title")
	}
	left := s.Tasks()
	if len(left) != 1 || left[0].Title != "Dinner" {
		t.Fatalf("unexpected remaining tasks: %+v", left)
	}
}

func TestSubjectIndependentTaskLists(t *testing.T) {
	t.Parallel()
	a := NewSubject("Buddy", "dog", 3)
	b := NewSubject("Whiskers", "cat", 5)
	_ = a.AddTask(validTask())
	if got := len(b.Tasks()); got != 0 {
		t.Fatalf("subjects share a task list, b has %d tasks", got)
	}
}

func TestTasksByPriority(t *testing.T) {
	t.Parallel()
	s := NewSubject("Buddy", "dog", 3)
	walk := validTask()
	meds := validTask()
	meds.Title = "Medication"
	meds.Category = CategoryMedical
	play := validTask()
	play.Title = "Play"
	play.Priority = PriorityLow
	for _, task := range []*Task{walk, meds, play} {
		if err := s.AddTask(task); err != nil {
			t.Fatalf("AddTask error: %v", err)
		}
	}

	high, err := s.TasksByPriority("high")
	if err != nil {
		t.Fatalf("TasksByPriority error: %v", err)
	}
	if len(high) != 2 {
		t.Fatalf("high tier length = %d, want 2", len(high))
	}

	if _, err := s.TasksByPriority("urgent"); err == nil {
		t.Fatal("expected error for unknown tier")
	}

	if got := len(s.HighPriorityTasks()); got != 2 {
		t.Fatalf("HighPriorityTasks length = %d, want 2", got)
	}
}

func TestTotalCareMinutes(t *testing.T) {
	t.Parallel()
	s := NewSubject("Buddy", "dog", 3)
	if got := s.TotalCareMinutes(); got != 0 {
		t.Fatalf("empty subject TotalCareMinutes = %d", got)
	}
	a := validTask()
	b := validTask()
	b.Title = "Dinner"
	b.Duration = 15
	_ = s.AddTask(a)
	_ = s.AddTask(b)
	if got := s.TotalCareMinutes(); got != 45 {
		t.Fatalf("TotalCareMinutes = %d, want 45", got)
	}
}

func TestPlannerSubjects(t *testing.T) {
	t.Parallel()
	p := NewPlanner("Daily Care", 90)
	buddy := NewSubject("Buddy", "dog", 3)
	whiskers := NewSubject("Whiskers", "cat", 5)
	p.AddSubject(buddy)
	p.AddSubject(whiskers)

	got, ok := p.Subject("Whiskers")
	if !ok || got != whiskers {
		t.Fatalf("Subject(Whiskers) = %v, %v", got, ok)
	}
	if _, ok := p.Subject("Rex"); ok {
		t.Fatal("Subject(Rex) found a subject that does not exist")
	}

	if !p.RemoveSubject("Buddy") {
		t.Fatal("RemoveSubject returned false for an existing name")
	}
	if p.RemoveSubject("Buddy") {
		t.Fatal("RemoveSubject returned true after removal")
	}
	if subs := p.Subjects(); len(subs) != 1 || subs[0].Name != "Whiskers" {
		t.Fatalf("unexpected subjects: %+v", subs)
	}
}

func TestPlannerHasTimeFor(t *testing.T) {
	t.Parallel()
	p := NewPlanner("Daily Care", 60)
	if !p.HasTimeFor(60) {
		t.Fatal("HasTimeFor(60) = false with a 60 minute budget")
	}
	if p.HasTimeFor(61) {
		t.Fatal("HasTimeFor(61) = true with a 60 minute budget")
	}
}
