package rollover

import (
	"context"
	"errors"
	"testing"
	"time"

	"careplan/pkg/logx"
)

func TestDailySpec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want string
	}{
		{"09:00", "0 9 * * *"},
		{"21:30", "30 21 * * *"},
		{"00:05", "5 0 * * *"},
	}
	for _, tt := range tests {
		got, err := dailySpec(tt.raw)
		if err != nil {
			t.Fatalf("dailySpec(%q) error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("dailySpec(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}

	for _, raw := range []string{"24:00", "09:60", "0900", "late"} {
		if _, err := dailySpec(raw); err == nil {
			t.Fatalf("dailySpec(%q): expected error", raw)
		}
	}
}

func TestAtDefault(t *testing.T) {
	t.Parallel()
	if got := at(Config{}); got != "09:00" {
		t.Fatalf("at default = %q, want 09:00", got)
	}
	if got := at(Config{At: " 21:30 "}); got != "21:30" {
		t.Fatalf("at = %q, want trimmed 21:30", got)
	}
}

func TestStartRejectsBadTriggerTime(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true, At: "25:00"}, logx.Nop())
	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected error for invalid trigger time")
	}
}

func TestTriggerRunsJobAndRecordsHistory(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true, HistorySize: 2}, logx.Nop())

	ran := make(chan struct{}, 4)
	calls := 0
	s.SetJob(func(ctx context.Context) error {
		calls++
		ran <- struct{}{}
		if calls == 2 {
			return errors.New("boom")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop(context.Background())

	for i := 0; i < 3; i++ {
		s.trigger()
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatalf("job did not run for trigger %d", i)
		}
	}

	// Give runOne a moment to record the last run.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if h := s.History(); len(h) == 2 {
			if h[0].Error != "boom" {
				t.Fatalf("expected the failed run first in trimmed history, got %+v", h)
			}
			if h[1].Error != "" {
				t.Fatalf("expected the last run to succeed, got %+v", h[1])
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("history = %+v, want 2 records", s.History())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestTriggerBeforeStartIsNoop(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true}, logx.Nop())
	s.SetJob(func(ctx context.Context) error { return nil })
	s.trigger() // no queue yet; must not panic
	if got := len(s.History()); got != 0 {
		t.Fatalf("history length = %d before Start", got)
	}
}

// Apply drains the old cron whose callback takes the service mutex; a
// trigger dispatched mid-Apply must not wedge the service.
func TestApplyWithConcurrentTriggers(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true, At: "09:00"}, logx.Nop())
	s.SetJob(func(ctx context.Context) error { return nil })
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer s.Stop(context.Background())

	triggers := make(chan struct{})
	go func() {
		defer close(triggers)
		for i := 0; i < 200; i++ {
			s.trigger()
		}
	}()

	applies := make(chan struct{})
	go func() {
		defer close(applies)
		for i := 0; i < 50; i++ {
			s.Apply(Config{Enabled: true, At: "10:00"})
			s.Apply(Config{Enabled: true, At: "09:00"})
		}
	}()

	for _, ch := range []chan struct{}{triggers, applies} {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatal("rollover wedged applying config during triggers")
		}
	}

	// The restarted cron still dispatches the job through the worker.
	ran := make(chan struct{}, 1)
	s.SetJob(func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	s.trigger()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run after the config restart")
	}
}

func TestApplyWhileStoppedOnlyStoresConfig(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true, At: "09:00"}, logx.Nop())
	s.Apply(Config{Enabled: true, At: "10:00"})
	if got := at(s.cfg); got != "10:00" {
		t.Fatalf("at = %q after Apply, want 10:00", got)
	}
	if s.c != nil {
		t.Fatal("Apply started a cron on a stopped service")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true}, logx.Nop())
	s.SetJob(func(ctx context.Context) error { return nil })
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	s.Stop(context.Background())
	s.Stop(context.Background())
}
