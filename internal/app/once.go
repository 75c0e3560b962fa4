package app

import (
	"fmt"
	"io"

	"careplan/internal/config"
	"careplan/internal/schedule"
	"careplan/pkg/logx"
)

// Once builds the planner from config, generates a single schedule, marks
// the given titles complete and prints the result. No watcher, no rollover
// trigger, no completion log.
func Once(cfgPath string, complete []string, out io.Writer) error {
	mgr := config.NewConfigManager(cfgPath)
	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	planner, err := config.BuildPlanner(cfg.Planner)
	if err != nil {
		return err
	}

	sched := schedule.New(planner, logx.Nop())
	entries := sched.Generate()

	for _, title := range complete {
		if _, ok := sched.MarkComplete(title, ""); !ok {
			fmt.Fprintf(out, "no scheduled task titled %q\n", title)
		}
	}

	fmt.Fprintf(out, "Schedule for %s (%d min budget):\n", planner.Name, planner.BudgetMinutes)
	for _, e := range entries {
		status := " "
		if sched.IsComplete(e.Task.Title) {
			status = "x"
		}
		fmt.Fprintf(out, "  [%s] %-9s %s - %s\n", status, e.Start, e.Task.Title, e.Task.SubjectName)
	}
	if conflicts := sched.DetectConflicts(); len(conflicts) > 0 {
		fmt.Fprintln(out, "Conflicts:")
		for _, c := range conflicts {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
	fmt.Fprintln(out, "Reasoning:")
	for _, r := range sched.Reasoning() {
		fmt.Fprintf(out, "  %s\n", r)
	}
	return nil
}
