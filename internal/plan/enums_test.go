package plan

import "testing"

func TestParseCategory(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"movement", "feeding", "medical", "enrichment", "grooming"} {
		c, err := ParseCategory(s)
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", s, err)
		}
		if string(c) != s {
			t.Fatalf("ParseCategory(%q) = %q", s, c)
		}
	}

	for _, s := range []string{"", "walking", "Movement", "MEDICAL"} {
		if _, err := ParseCategory(s); err == nil {
			t.Fatalf("ParseCategory(%q): expected error", s)
		}
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want Priority
	}{
		{"low", PriorityLow},
		{"medium", PriorityMedium},
		{"high", PriorityHigh},
		{"HIGH", PriorityHigh},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.raw)
		if err != nil {
			t.Fatalf("ParsePriority(%q) error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePriority(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatal("expected error for unknown priority tier")
	}
	if _, err := ParsePriority(""); err == nil {
		t.Fatal("expected error for empty priority tier")
	}
}

func TestPriorityWeightOrdering(t *testing.T) {
	t.Parallel()
	if !(PriorityHigh.Weight() > PriorityMedium.Weight() && PriorityMedium.Weight() > PriorityLow.Weight()) {
		t.Fatalf("weights out of order: %d %d %d",
			PriorityHigh.Weight(), PriorityMedium.Weight(), PriorityLow.Weight())
	}
	if got := PriorityHigh.String(); got != "HIGH" {
		t.Fatalf("String() = %q, want HIGH", got)
	}
}

func TestParseTimeOfDayAndFrequency(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "morning", "evening"} {
		if _, err := ParseTimeOfDay(s); err != nil {
			t.Fatalf("ParseTimeOfDay(%q) error: %v", s, err)
		}
	}
	if _, err := ParseTimeOfDay("noon"); err == nil {
		t.Fatal("expected error for unknown time preference")
	}

	for _, s := range []string{"", "daily", "weekly"} {
		if _, err := ParseFrequency(s); err != nil {
			t.Fatalf("ParseFrequency(%q) error: %v", s, err)
		}
	}
	if _, err := ParseFrequency("monthly"); err == nil {
		t.Fatal("expected error for unknown frequency")
	}
}
