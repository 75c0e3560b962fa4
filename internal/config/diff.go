package config

import (
	"reflect"
	"sort"
	"strings"

	logx "careplan/pkg/logx"
)

// SummarizeConfigChange returns (1) a compact list of changed sections and
// (2) safe structured attrs for logging the new values.
func SummarizeConfigChange(oldCfg, newCfg *Config) ([]string, []logx.Field) {
	if oldCfg == nil {
		oldCfg = &Config{}
	}
	if newCfg == nil {
		newCfg = &Config{}
	}

	changed := make([]string, 0, 4)
	attrs := make([]logx.Field, 0, 12)

	// Logging
	if oldCfg.Logging != newCfg.Logging {
		changed = append(changed, "logging")
		attrs = append(attrs,
			logx.String("logx.level", newCfg.Logging.Level),
			logx.Bool("logx.console", newCfg.Logging.Console),
			logx.Bool("logx.file_enabled", newCfg.Logging.File.Enabled),
		)
	}

	// Planner definition (subjects/tasks/budget)
	if !reflect.DeepEqual(oldCfg.Planner, newCfg.Planner) {
		changed = append(changed, "planner")
		attrs = append(attrs,
			logx.String("planner.name", newCfg.Planner.Name),
			logx.Int("planner.budget_minutes", newCfg.Planner.BudgetMinutes),
			logx.Int("planner.subjects", len(newCfg.Planner.Subjects)),
			logx.Int("planner.tasks", countTasks(newCfg.Planner)),
		)
	}

	// Rollover trigger
	if oldCfg.Rollover != newCfg.Rollover {
		changed = append(changed, "rollover")
		attrs = append(attrs,
			logx.Bool("rollover.enabled", newCfg.Rollover.Enabled),
			logx.String("rollover.at", RolloverAt(newCfg.Rollover)),
			logx.String("rollover.timezone", strings.TrimSpace(newCfg.Rollover.Timezone)),
		)
	}

	// Storage (completion log). Nil means disabled.
	oldS := derefStorage(oldCfg.Storage)
	newS := derefStorage(newCfg.Storage)
	if oldS != newS {
		changed = append(changed, "storage")
		attrs = append(attrs,
			logx.String("storage.driver", strings.TrimSpace(newS.Driver)),
			logx.Bool("storage.path_set", strings.TrimSpace(newS.Path) != ""),
			logx.String("storage.busy_timeout", strings.TrimSpace(newS.BusyTimeout)),
		)
	}

	sort.Strings(changed)
	return changed, attrs
}

func derefStorage(s *StorageConfig) StorageConfig {
	if s == nil {
		return StorageConfig{}
	}
	return *s
}

func countTasks(pc PlannerConfig) int {
	n := 0
	for _, s := range pc.Subjects {
		n += len(s.Tasks)
	}
	return n
}
