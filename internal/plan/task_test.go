package plan

import "testing"

func validTask() *Task {
	return &Task{
		Title:    "Morning Walk",
		Category: CategoryMovement,
		Duration: 30,
		Priority: PriorityHigh,
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Task)
		ok     bool
	}{
		{name: "valid", mutate: func(*Task) {}, ok: true},
		{name: "missing title", mutate: func(x *Task) { x.Title = "" }},
		{name: "unknown category", mutate: func(x *Task) { x.Category = "walking" }},
		{name: "zero duration", mutate: func(x *Task) { x.Duration = 0 }},
		{name: "negative duration", mutate: func(x *Task) { x.Duration = -5 }},
		{name: "unknown priority", mutate: func(x *Task) { x.Priority = 7 }},
		{name: "unknown time preference", mutate: func(x *Task) { x.TimeOfDay = "noon" }},
		{name: "unknown frequency", mutate: func(x *Task) { x.Frequency = "monthly" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(task)
			err := task.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		freq    Frequency
		date    string
		wantDue string
	}{
		{name: "daily", freq: FreqDaily, date: "2025-03-10", wantDue: "2025-03-11"},
		{name: "weekly", freq: FreqWeekly, date: "2025-03-10", wantDue: "2025-03-17"},
		{name: "daily month boundary", freq: FreqDaily, date: "2025-01-31", wantDue: "2025-02-01"},
		{name: "weekly year boundary", freq: FreqWeekly, date: "2025-12-29", wantDue: "2026-01-05"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			task.Frequency = tt.freq
			next, err := task.NextOccurrence(tt.date)
			if err != nil {
				t.Fatalf("NextOccurrence error: %v", err)
			}
			if next == nil {
				t.Fatal("expected a follow-up task")
			}
			if next.NextDue != tt.wantDue {
				t.Fatalf("NextDue = %q, want %q", next.NextDue, tt.wantDue)
			}
			if next.Title != task.Title || next.Duration != task.Duration {
				t.Fatalf("follow-up mutated the task fields: %+v", next)
			}
			if task.NextDue != "" {
				t.Fatalf("completed task gained NextDue %q", task.NextDue)
			}
		})
	}
}

func TestNextOccurrenceOneShot(t *testing.T) {
	t.Parallel()
	task := validTask()
	next, err := task.NextOccurrence("2025-03-10")
	if err != nil {
		t.Fatalf("NextOccurrence error: %v", err)
	}
	if next != nil {
		t.Fatalf("one-shot task spawned a follow-up: %+v", next)
	}
}

func TestNextOccurrenceBadDate(t *testing.T) {
	t.Parallel()
	task := validTask()
	task.Frequency = FreqDaily
	if _, err := task.NextOccurrence("10/03/2025"); err == nil {
		t.Fatal("expected error for malformed completion date")
	}
}

func TestTaskString(t *testing.T) {
	t.Parallel()
	got := validTask().String()
	want := "Morning Walk (30min, HIGH)"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
